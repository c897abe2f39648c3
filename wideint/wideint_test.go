package wideint

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModMul32(t *testing.T) {
	require.EqualValues(t, 3, ModMul32(5, 4, 17))
	require.EqualValues(t, 0, ModMul32(0, 123456, 97))
	require.EqualValues(t, 96, ModMul32(96, 1, 97))
}

func TestModMul64(t *testing.T) {
	const q = uint64(18446744069414584321) // 2^64 - 2^32 + 1, a Goldilocks-style prime
	a := q - 1
	b := q - 1
	got := ModMul64(a, b, q)

	want := new(big.Int).Mod(
		new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b)),
		new(big.Int).SetUint64(q),
	)
	require.EqualValues(t, want.Uint64(), got)
}

func TestU128AddSub(t *testing.T) {
	a := U128From64(0, ^uint64(0))
	b := U128FromUint64(1)
	sum := a.Add(b)
	require.Equal(t, U128From64(1, 0), sum)
	require.Equal(t, a, sum.Sub(b))
}

func TestU128Cmp(t *testing.T) {
	require.Equal(t, 0, U128FromUint64(5).Cmp(U128FromUint64(5)))
	require.Equal(t, -1, U128FromUint64(5).Cmp(U128FromUint64(6)))
	require.Equal(t, 1, U128From64(1, 0).Cmp(U128FromUint64(^uint64(0))))
}

func TestU128MulAgainstBigInt(t *testing.T) {
	a := U128From64(0x1234567890abcdef, 0xfedcba0987654321)
	b := U128From64(0x0fedcba098765432, 0x1234567890abcdef)

	got := a.Mul(b)

	want := new(big.Int).Mul(a.BigInt(), b.BigInt())
	require.Equal(t, want, got.BigInt())
}

func TestU128BigIntRoundTrip(t *testing.T) {
	a := U128From64(0xdeadbeefcafef00d, 0x0123456789abcdef)
	require.Equal(t, a, U128FromBigInt(a.BigInt()))
}

func TestModMul128(t *testing.T) {
	q := U128From64(0, 340282366920938463) // < 2^64, exercised through the 128-bit path
	a := U128FromUint64(340282366920938462)
	b := U128FromUint64(2)

	got := ModMul128(a, b, q)

	want := new(big.Int).Mod(
		new(big.Int).Mul(a.BigInt(), b.BigInt()),
		q.BigInt(),
	)
	require.Equal(t, want, got.BigInt())
}

func TestU256BigIntRoundTrip(t *testing.T) {
	x, ok := new(big.Int).SetString("123456789012345678901234567890123456789012345678", 10)
	require.True(t, ok)
	u := U256FromBigInt(x)
	require.Equal(t, x, u.BigInt())
}
