package fieldElements

import (
	"math/big"
	"testing"

	"github.com/zkfields/Goldilocks/internal/testutils"
)

// All addition variants promise the same function on canonical inputs. The tests here compare
// them pairwise and against big.Int arithmetic, with the wraparound boundaries forced explicitly
// rather than hoping random sampling hits them.

var allAdditionVariants = []struct {
	f    func(x, y FieldElement) FieldElement
	name string
}{
	{Add, "Add"},
	{AddFast, "AddFast"},
	{AddWinterfell, "AddWinterfell"},
}

func TestAdditionVariantsVsBigInt(t *testing.T) {
	prepareTestFieldElements(t)
	xs := CachedFieldElements.GetElements(10001, 128)
	ys := CachedFieldElements.GetElements(10002, 128)

	// Force the interesting values into the grid.
	xs[0], xs[1], xs[2] = 0, 1, FieldElementMinusOne
	ys[0], ys[1], ys[2] = 0, 1, FieldElementMinusOne

	var xInt, yInt, sumInt big.Int
	for _, x := range xs {
		for _, y := range ys {
			xInt.SetUint64(x)
			yInt.SetUint64(y)
			sumInt.Add(&xInt, &yInt)
			sumInt.Mod(&sumInt, fieldSize_Int)
			expected := sumInt.Uint64()
			for _, variant := range allAdditionVariants {
				got := variant.f(x, y)
				testutils.FatalUnless(t, got == expected, "%v(%v, %v) == %v, expected %v", variant.name, x, y, got, expected)
			}
		}
	}
}

// TestAdditionExactWraparound checks the pairs whose exact sum is FieldSize or FieldSize+1. These
// exercise the sum >= FieldSize comparison in AddFast at equality and the borrow-free path of
// AddWinterfell without relying on random inputs.
func TestAdditionExactWraparound(t *testing.T) {
	prepareTestFieldElements(t)
	xs := CachedFieldElements.GetElements(10003, 256)
	xs[0], xs[1] = 1, FieldElementMinusOne
	for _, x := range xs {
		if x == 0 {
			continue
		}
		y := FieldSize - x
		for _, variant := range allAdditionVariants {
			testutils.FatalUnless(t, variant.f(x, y) == 0, "%v(%v, FieldSize-%v) != 0", variant.name, x, x)
			if y+1 < FieldSize {
				testutils.FatalUnless(t, variant.f(x, y+1) == 1, "%v(%v, FieldSize-%v+1) != 1", variant.name, x, x)
			}
		}
	}
	for _, variant := range allAdditionVariants {
		testutils.FatalUnless(t, variant.f(FieldElementMinusOne, FieldElementMinusOne) == FieldSize-2,
			"%v(FieldSize-1, FieldSize-1) != FieldSize-2", variant.name)
		testutils.FatalUnless(t, variant.f(oneHalfModFieldSize, oneHalfModFieldSize) == 1,
			"%v((FieldSize+1)/2, (FieldSize+1)/2) != 1", variant.name)
	}
}

func TestAdditionAlgebraicLaws(t *testing.T) {
	prepareTestFieldElements(t)
	xs := CachedFieldElements.GetElements(10004, 64)
	ys := CachedFieldElements.GetElements(10005, 64)
	zs := CachedFieldElements.GetElements(10006, 64)
	for i, x := range xs {
		y, z := ys[i], zs[i]
		testutils.FatalUnless(t, Add(x, y) == Add(y, x), "addition is not commutative at x == %v, y == %v", x, y)
		testutils.FatalUnless(t, Add(Add(x, y), z) == Add(x, Add(y, z)), "addition is not associative at x == %v, y == %v, z == %v", x, y, z)
		testutils.FatalUnless(t, Add(x, FieldElementZero) == x, "0 is not neutral for addition at x == %v", x)
	}
}
