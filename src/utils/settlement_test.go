package utils

import (
	"log"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/YinkaFoster/fostertours/src/db"
	"github.com/YinkaFoster/fostertours/src/types"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB() (*gorm.DB, sqlmock.Sqlmock) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{})
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}

	return gormDB, mock
}

func TestSettleBookingPayment(t *testing.T) {
	d, mock := newMockDB()
	db.NewDB(d)

	reference := "cs_test_a1b2c3d4e5f6"
	txnRows := func(status string) *sqlmock.Rows {
		return sqlmock.
			NewRows([]string{"id", "reference", "user_id", "booking_id", "amount", "status", "purpose"}).
			AddRow("ptx_abc123def456", reference, "usr_abc123def456", "bk_abc123def456", 1200.0, status, "booking")
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "payment_transactions" WHERE`).
		WithArgs(reference, 1).
		WillReturnRows(txnRows("pending"))
	mock.ExpectExec(`UPDATE "payment_transactions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "bookings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	txn, settled, err := SettlePaymentTransaction(reference)
	assert.Nil(t, err)
	assert.True(t, settled)
	assert.Equal(t, types.TRANSACTION_SUCCESS, txn.Status)
	assert.Equal(t, "bk_abc123def456", txn.BookingID)

	// Settling the same reference again must be a no-op: the guarded update
	// matches zero rows, so the booking is never touched a second time.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "payment_transactions" WHERE`).
		WithArgs(reference, 1).
		WillReturnRows(txnRows("success"))
	mock.ExpectExec(`UPDATE "payment_transactions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	_, settled, err = SettlePaymentTransaction(reference)
	assert.Nil(t, err)
	assert.False(t, settled)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestSettleWalletTopUp(t *testing.T) {
	d, mock := newMockDB()
	db.NewDB(d)

	reference := "cs_test_f6e5d4c3b2a1"
	txnRows := func(status string) *sqlmock.Rows {
		return sqlmock.
			NewRows([]string{"id", "reference", "user_id", "amount", "status", "purpose", "payment_method", "metadata"}).
			AddRow("ptx_def456abc123", reference, "usr_abc123def456", 500.0, status, "wallet", "stripe",
				[]byte(`{"wallet_transaction_id":"wtx_abc123def456"}`))
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "payment_transactions" WHERE`).
		WithArgs(reference, 1).
		WillReturnRows(txnRows("initiated"))
	mock.ExpectExec(`UPDATE "payment_transactions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "wallet_transactions"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`UPDATE "wallet_transactions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	txn, settled, err := SettlePaymentTransaction(reference)
	assert.Nil(t, err)
	assert.True(t, settled)
	assert.Equal(t, "wtx_abc123def456", txn.Metadata["wallet_transaction_id"])

	// Second settle of the same reference must not credit the wallet again.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "payment_transactions" WHERE`).
		WithArgs(reference, 1).
		WillReturnRows(txnRows("success"))
	mock.ExpectExec(`UPDATE "payment_transactions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	_, settled, err = SettlePaymentTransaction(reference)
	assert.Nil(t, err)
	assert.False(t, settled)
	assert.Nil(t, mock.ExpectationsWereMet())
}
