package memory_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/voyago/travel_booking_app/internal/apperrors"
	"github.com/voyago/travel_booking_app/internal/core/domain"
	portsrepo "github.com/voyago/travel_booking_app/internal/core/ports/repositories"
	"github.com/voyago/travel_booking_app/internal/repositories/memory"
)

type MemoryRepoTestSuite struct {
	suite.Suite
	repos  portsrepo.RepositoryProvider
	userID string
}

func (suite *MemoryRepoTestSuite) SetupTest() {
	store := memory.NewStore()
	suite.repos = memory.NewRepositoryProvider(store)

	suite.userID = uuid.NewString()
	err := suite.repos.UserRepo.SaveUser(context.Background(), domain.User{
		UserID: suite.userID,
		Name:   "Asha",
		Email:  "asha@example.com",
	}, "hash")
	suite.Require().NoError(err)
}

func (suite *MemoryRepoTestSuite) topUp(amount int64) {
	_, err := suite.repos.WalletRepo.CreditWallet(context.Background(), suite.userID, amount, "top-up")
	suite.Require().NoError(err)
}

func (suite *MemoryRepoTestSuite) newBooking(totalAmount int64) domain.Booking {
	return domain.Booking{
		BookingID:     uuid.NewString(),
		Reference:     "FL-" + uuid.NewString()[:8],
		UserID:        suite.userID,
		Type:          domain.BookingFlight,
		Details:       []byte(`{"flight":"6E-204"}`),
		TotalAmount:   totalAmount,
		PaymentMethod: domain.PaymentWallet,
		Status:        domain.StatusConfirmed,
		BookedAt:      time.Now().UTC(),
	}
}

// --- Test Cases ---

func (suite *MemoryRepoTestSuite) TestCreateBookingWithDebit_ChargesWallet() {
	ctx := context.Background()
	suite.topUp(1000)

	booking := suite.newBooking(600)
	err := suite.repos.BookingRepo.CreateBookingWithDebit(ctx, booking, 600)
	suite.Require().NoError(err)

	balance, err := suite.repos.WalletRepo.GetWalletBalance(ctx, suite.userID)
	suite.Require().NoError(err)
	suite.Equal(int64(400), balance)

	txns, err := suite.repos.WalletRepo.ListWalletTransactions(ctx, suite.userID)
	suite.Require().NoError(err)
	suite.Require().Len(txns, 2)
	suite.Equal(domain.WalletDebit, txns[0].Type)
	suite.Equal(booking.Reference, txns[0].BookingReference)
	suite.Equal(int64(400), txns[0].BalanceAfter)
}

func (suite *MemoryRepoTestSuite) TestCreateBookingWithDebit_InsufficientFundsWritesNothing() {
	ctx := context.Background()
	suite.topUp(100)

	booking := suite.newBooking(500)
	err := suite.repos.BookingRepo.CreateBookingWithDebit(ctx, booking, 500)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)

	_, err = suite.repos.BookingRepo.FindBookingByID(ctx, booking.BookingID, suite.userID)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	balance, err := suite.repos.WalletRepo.GetWalletBalance(ctx, suite.userID)
	suite.Require().NoError(err)
	suite.Equal(int64(100), balance)
}

func (suite *MemoryRepoTestSuite) TestConcurrentDebits_ExactlyOneWins() {
	ctx := context.Background()
	suite.topUp(100)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			booking := suite.newBooking(80)
			errs[i] = suite.repos.BookingRepo.CreateBookingWithDebit(ctx, booking, 80)
		}(i)
	}
	wg.Wait()

	var successes, insufficient int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			insufficient++
		default:
			suite.FailNowf("unexpected error", "%v", err)
		}
	}
	suite.Equal(1, successes)
	suite.Equal(1, insufficient)

	balance, err := suite.repos.WalletRepo.GetWalletBalance(ctx, suite.userID)
	suite.Require().NoError(err)
	suite.Equal(int64(20), balance)
}

func (suite *MemoryRepoTestSuite) TestCancelBookingWithRefund_RestoresBalance() {
	ctx := context.Background()
	suite.topUp(1000)

	booking := suite.newBooking(600)
	suite.Require().NoError(suite.repos.BookingRepo.CreateBookingWithDebit(ctx, booking, 600))

	cancelled, err := suite.repos.BookingRepo.CancelBookingWithRefund(ctx, booking.BookingID, suite.userID, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Equal(domain.StatusCancelled, cancelled.Status)
	suite.Require().NotNil(cancelled.CancelledAt)

	balance, err := suite.repos.WalletRepo.GetWalletBalance(ctx, suite.userID)
	suite.Require().NoError(err)
	suite.Equal(int64(1000), balance)

	txns, err := suite.repos.WalletRepo.ListWalletTransactions(ctx, suite.userID)
	suite.Require().NoError(err)
	suite.Require().Len(txns, 3)
	suite.Equal(domain.WalletCredit, txns[0].Type)
	suite.Equal(booking.Reference, txns[0].BookingReference)
}

func (suite *MemoryRepoTestSuite) TestCancelTwice_RefundsOnce() {
	ctx := context.Background()
	suite.topUp(1000)

	booking := suite.newBooking(600)
	suite.Require().NoError(suite.repos.BookingRepo.CreateBookingWithDebit(ctx, booking, 600))

	_, err := suite.repos.BookingRepo.CancelBookingWithRefund(ctx, booking.BookingID, suite.userID, time.Now().UTC())
	suite.Require().NoError(err)

	_, err = suite.repos.BookingRepo.CancelBookingWithRefund(ctx, booking.BookingID, suite.userID, time.Now().UTC())
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAlreadyCancelled)

	balance, err := suite.repos.WalletRepo.GetWalletBalance(ctx, suite.userID)
	suite.Require().NoError(err)
	suite.Equal(int64(1000), balance)
}

func (suite *MemoryRepoTestSuite) TestDuplicateReferenceRejected() {
	ctx := context.Background()

	first := suite.newBooking(0)
	first.PaymentMethod = domain.PaymentOther
	suite.Require().NoError(suite.repos.BookingRepo.CreateBookingWithDebit(ctx, first, 0))

	second := suite.newBooking(0)
	second.PaymentMethod = domain.PaymentOther
	second.Reference = first.Reference
	err := suite.repos.BookingRepo.CreateBookingWithDebit(ctx, second, 0)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *MemoryRepoTestSuite) TestFindBookingByID_HidesOtherUsersBookings() {
	ctx := context.Background()

	otherID := uuid.NewString()
	suite.Require().NoError(suite.repos.UserRepo.SaveUser(ctx, domain.User{
		UserID: otherID,
		Name:   "Ravi",
		Email:  "ravi@example.com",
	}, "hash"))

	booking := suite.newBooking(0)
	booking.PaymentMethod = domain.PaymentOther
	suite.Require().NoError(suite.repos.BookingRepo.CreateBookingWithDebit(ctx, booking, 0))

	_, err := suite.repos.BookingRepo.FindBookingByID(ctx, booking.BookingID, otherID)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	found, err := suite.repos.BookingRepo.FindBookingByID(ctx, booking.BookingID, suite.userID)
	suite.Require().NoError(err)
	suite.Equal(booking.Reference, found.Reference)
}

func (suite *MemoryRepoTestSuite) TestListBookingsByUser_NewestFirst() {
	ctx := context.Background()
	base := time.Now().UTC()

	var refs []string
	for i := 0; i < 3; i++ {
		booking := suite.newBooking(0)
		booking.PaymentMethod = domain.PaymentOther
		booking.BookedAt = base.Add(time.Duration(i) * time.Minute)
		suite.Require().NoError(suite.repos.BookingRepo.CreateBookingWithDebit(ctx, booking, 0))
		refs = append(refs, booking.Reference)
	}

	bookings, err := suite.repos.BookingRepo.ListBookingsByUser(ctx, suite.userID)
	suite.Require().NoError(err)
	suite.Require().Len(bookings, 3)
	suite.Equal(refs[2], bookings[0].Reference)
	suite.Equal(refs[1], bookings[1].Reference)
	suite.Equal(refs[0], bookings[2].Reference)
}

func (suite *MemoryRepoTestSuite) TestConcurrentCreates_AllReferencesDistinct() {
	ctx := context.Background()
	suite.topUp(100000)

	const n = 20
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			booking := suite.newBooking(10)
			booking.Reference = fmt.Sprintf("FL-CONC%04d", i)
			errs[i] = suite.repos.BookingRepo.CreateBookingWithDebit(ctx, booking, 10)
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		suite.Require().NoError(err)
	}

	bookings, err := suite.repos.BookingRepo.ListBookingsByUser(ctx, suite.userID)
	suite.Require().NoError(err)
	suite.Require().Len(bookings, n)

	seen := make(map[string]struct{}, n)
	for _, b := range bookings {
		seen[b.Reference] = struct{}{}
	}
	suite.Len(seen, n)

	balance, err := suite.repos.WalletRepo.GetWalletBalance(ctx, suite.userID)
	suite.Require().NoError(err)
	suite.Equal(int64(100000-10*n), balance)
}

func TestMemoryRepoTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryRepoTestSuite))
}
