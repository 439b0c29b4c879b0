package domain_test

import (
	"testing"

	"github.com/api-sage/bankwire/src/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eur(amount string) domain.Money {
	return domain.NewMoney(decimal.RequireFromString(amount), domain.EUR)
}

func TestParseCurrencyNormalizesCode(t *testing.T) {
	ccy, err := domain.ParseCurrency("  eur ")
	require.NoError(t, err)
	assert.Equal(t, domain.EUR, ccy)
}

func TestParseCurrencyRejectsInvalidCodes(t *testing.T) {
	for _, code := range []string{"", "EURO", "E", "QQQ"} {
		_, err := domain.ParseCurrency(code)
		assert.ErrorIs(t, err, domain.ErrInvalidRequest, "code %q", code)
	}
}

func TestMoneyArithmeticIsExact(t *testing.T) {
	sum, err := eur("0.1").Add(eur("0.2"))
	require.NoError(t, err)
	assert.True(t, sum.Equal(eur("0.3")))

	diff, err := eur("10").Sub(eur("10.01"))
	require.NoError(t, err)
	assert.True(t, diff.IsNegative())
	assert.Equal(t, "EUR -0.01", diff.String())
}

func TestMoneyRejectsMixedCurrencies(t *testing.T) {
	usd := domain.NewMoney(decimal.NewFromInt(1), domain.USD)

	_, err := eur("1").Add(usd)
	assert.ErrorIs(t, err, domain.ErrCurrencyMismatch)

	_, err = eur("1").Sub(usd)
	assert.ErrorIs(t, err, domain.ErrCurrencyMismatch)

	assert.False(t, eur("1").Equal(usd))
}

func TestMoneyComparisons(t *testing.T) {
	assert.True(t, eur("9.99").LessThan(eur("10")))
	assert.False(t, eur("10").LessThan(eur("10")))
	assert.True(t, eur("0.01").IsPositive())
	assert.False(t, domain.ZeroMoney(domain.EUR).IsPositive())
	assert.False(t, domain.ZeroMoney(domain.EUR).IsNegative())
}
