package limb

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// reference builds the value of the least significant first limbs without
// going through radix.
func reference(limbs []uint64) *big.Int {
	v := new(big.Int)
	for i := len(limbs) - 1; i >= 0; i-- {
		v.Lsh(v, 64)
		v.Or(v, new(big.Int).SetUint64(limbs[i]))
	}

	return v
}

func randInteger(rng *rand.Rand) Integer {
	ds := make([]uint64, rng.Intn(6))
	for i := range ds {
		switch rng.Intn(4) {
		case 0:
			ds[i] = math.MaxUint64
		case 1:
			ds[i] = 0
		default:
			ds[i] = rng.Uint64()
		}
	}

	return FromDigits(ds)
}

func TestFromDigits(t *testing.T) {
	type TC struct {
		name   string
		digits []uint64
		limbs  []uint64
		str    string
	}

	tcs := []TC{
		{
			name:   "empty",
			digits: nil,
			limbs:  []uint64{0},
			str:    "0,",
		},
		{
			name:   "zero",
			digits: []uint64{0, 0, 0},
			limbs:  []uint64{0},
			str:    "0,",
		},
		{
			name:   "2^64",
			digits: []uint64{1, 0},
			limbs:  []uint64{0, 1},
			str:    "1,0,",
		},
		{
			name:   "leading zeros",
			digits: []uint64{0, 3, 2, 1},
			limbs:  []uint64{1, 2, 3},
			str:    "3,2,1,",
		},
		{
			name:   "max",
			digits: []uint64{math.MaxUint64},
			limbs:  []uint64{math.MaxUint64},
			str:    "18446744073709551615,",
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			x := FromDigits(tc.digits)
			require.Equal(t, tc.limbs, x.limbs)
			require.Equal(t, len(tc.limbs), x.Len())
			require.Equal(t, tc.str, x.String())
			require.Equal(t, 0, reference(tc.limbs).Cmp(x.Big()))
		})
	}
}

func TestZeroValue(t *testing.T) {
	var x Integer

	require.True(t, x.IsZero())
	require.Equal(t, 1, x.Len())
	require.Equal(t, []uint64{0}, x.Digits())
	require.Equal(t, "0,", x.String())
	require.Equal(t, "0", x.Text(10))
	require.True(t, x.Equal(New(0)))
	require.True(t, Add(x, x).IsZero())
	require.True(t, Mul(x, New(5)).IsZero())
}

func TestAdd(t *testing.T) {
	type TC struct {
		name string
		x, y Integer
		sum  string
	}

	tcs := []TC{
		{
			name: "small",
			x:    New(2),
			y:    New(3),
			sum:  "5,",
		},
		{
			name: "carry",
			x:    New(math.MaxUint64),
			y:    New(1),
			sum:  "1,0,",
		},
		{
			name: "carry chain",
			x:    FromDigits([]uint64{math.MaxUint64, math.MaxUint64, math.MaxUint64}),
			y:    New(1),
			sum:  "1,0,0,0,",
		},
		{
			name: "uneven",
			x:    FromDigits([]uint64{7, 0, 0}),
			y:    FromDigits([]uint64{1, 2}),
			sum:  "7,1,2,",
		},
		{
			name: "double max",
			x:    New(math.MaxUint64),
			y:    New(math.MaxUint64),
			sum:  "1,18446744073709551614,",
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.sum, Add(tc.x, tc.y).String())
			require.Equal(t, tc.sum, Add(tc.y, tc.x).String())
		})
	}
}

func TestMul(t *testing.T) {
	type TC struct {
		name    string
		x, y    Integer
		product string
	}

	tcs := []TC{
		{
			name:    "small",
			x:       New(6),
			y:       New(7),
			product: "42,",
		},
		{
			name:    "zero",
			x:       FromDigits([]uint64{1, 2, 3}),
			y:       New(0),
			product: "0,",
		},
		{
			name:    "max squared",
			x:       New(math.MaxUint64),
			y:       New(math.MaxUint64),
			product: "18446744073709551614,1,",
		},
		{
			name:    "shift by limb",
			x:       FromDigits([]uint64{5, 9}),
			y:       FromDigits([]uint64{1, 0}),
			product: "5,9,0,",
		},
		{
			name:    "2^128 squared",
			x:       FromDigits([]uint64{1, 0, 0}),
			y:       FromDigits([]uint64{1, 0, 0}),
			product: "1,0,0,0,0,",
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.product, Mul(tc.x, tc.y).String())
			require.Equal(t, tc.product, Mul(tc.y, tc.x).String())
		})
	}
}

func TestArithmeticMatchesBig(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		x := randInteger(rng)
		y := randInteger(rng)

		bx := reference(x.limbs)
		by := reference(y.limbs)

		sum := Add(x, y)
		if sum.Big().Cmp(new(big.Int).Add(bx, by)) != 0 {
			t.Logf("x: %s\ny: %s\nsum: %s", spew.Sdump(x), spew.Sdump(y), spew.Sdump(sum))
			t.FailNow()
		}

		product := Mul(x, y)
		if product.Big().Cmp(new(big.Int).Mul(bx, by)) != 0 {
			t.Logf("x: %s\ny: %s\nproduct: %s", spew.Sdump(x), spew.Sdump(y), spew.Sdump(product))
			t.FailNow()
		}

		// Results never carry high zero limbs.
		require.True(t, sum.Len() == 1 || sum.limbs[sum.Len()-1] != 0)
		require.True(t, product.Len() == 1 || product.limbs[product.Len()-1] != 0)
	}
}

func TestCopy(t *testing.T) {
	x := FromDigits([]uint64{1, 2})
	y := x.Copy()

	y.limbs[0] = 99
	require.Equal(t, "1,2,", x.String())
	require.Equal(t, "1,99,", y.String())
	require.False(t, x.Equal(y))
	require.True(t, x.Equal(x.Copy()))
}

func TestBinary(t *testing.T) {
	type TC struct {
		name string
		x    Integer
		data []byte
	}

	tcs := []TC{
		{
			name: "zero",
			x:    New(0),
			data: []byte{0},
		},
		{
			name: "one byte",
			x:    New(0xab),
			data: []byte{0xab},
		},
		{
			name: "2^64",
			x:    FromDigits([]uint64{1, 0}),
			data: []byte{1, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "limbs",
			x:    FromDigits([]uint64{0x0102, 0x0304050607080910}),
			data: []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x10},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			data, err := tc.x.MarshalBinary()
			require.NoError(t, err)
			require.Equal(t, tc.data, data)

			var x Integer
			err = x.UnmarshalBinary(tc.data)
			require.NoError(t, err)
			require.True(t, tc.x.Equal(x), spew.Sdump(x))
		})
	}

	t.Run("leading zero bytes", func(t *testing.T) {
		var x Integer
		err := x.UnmarshalBinary([]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x05})
		require.NoError(t, err)
		require.Equal(t, "5,", x.String())
	})

	t.Run("empty", func(t *testing.T) {
		var x Integer
		err := x.UnmarshalBinary(nil)
		require.NoError(t, err)
		require.True(t, x.IsZero())
	})
}

func TestText(t *testing.T) {
	x := FromDigits([]uint64{1, 0})
	require.Equal(t, "18446744073709551616", x.Text(10))
	require.Equal(t, "10000000000000000", x.Text(16))
}
