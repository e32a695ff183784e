package token

import (
	"fmt"
	"testing"

	"github.com/jihanurrahman33/BREMS/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestIssuer(t *testing.T) *Issuer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.TokenBalanceModel{}))
	return NewIssuer(db)
}

func TestMintAuthorization(t *testing.T) {
	issuer := newTestIssuer(t)
	addr := "0x00000000000000000000000000000000000000C1"

	// 未授权的调用方不能增发
	err := issuer.Mint(issuer.db, "stranger", addr, 100)
	assert.ErrorIs(t, err, ErrUnauthorizedMinter)

	balance, err := issuer.BalanceOf(addr)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	issuer.AuthorizeMinter("ledger")
	require.NoError(t, issuer.Mint(issuer.db, "ledger", addr, 100))
	require.NoError(t, issuer.Mint(issuer.db, "ledger", addr, 50))

	balance, err = issuer.BalanceOf(addr)
	require.NoError(t, err)
	assert.Equal(t, int64(150), balance)

	// 撤销授权后立即失效
	issuer.RevokeMinter("ledger")
	err = issuer.Mint(issuer.db, "ledger", addr, 1)
	assert.ErrorIs(t, err, ErrUnauthorizedMinter)
}
