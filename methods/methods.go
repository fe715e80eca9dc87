// Package methods holds the katas about defining and passing behaviour:
// default, variadic and keyword arguments, blocks, procs, lambdas,
// closures, partial application, currying and lazy evaluation.
package methods

import (
	"context"
	"math/big"
	"strconv"

	pk "github.com/Pure-Company/purekata"
)

// IsPrime reports whether num is prime.
func IsPrime(num int) bool {
	if num < 2 {
		return false
	}
	for d := 2; d*d <= num; d++ {
		if num%d == 0 {
			return false
		}
	}
	return true
}

// Take returns arr from index onwards; index defaults to 1. A negative
// index counts from the end, so -1 keeps only the last element.
func Take[T any](arr []T, index ...int) []T {
	i := 1
	if len(index) > 0 {
		i = index[0]
	}
	if i < 0 {
		i += len(arr)
	}
	if i < 0 || i >= len(arr) {
		return []T{}
	}
	return append([]T{}, arr[i:]...)
}

// FullName joins a first name, any middle names and a last name.
func FullName(names ...string) string {
	return pk.JoinStrings(" ", names...)
}

// Factorial yields n! to block. It is the block-passing kata: the
// computation is handed to the caller rather than returned.
func Factorial(n int, block func(*big.Int)) {
	block(factorial(n))
}

func factorial(n int) *big.Int {
	if n < 2 {
		return big.NewInt(1)
	}
	return new(big.Int).MulRange(1, int64(n))
}

// SumProc and SquareProc are saved blocks handed to SquareOfSum.
type (
	SumProc    func([]int) int
	SquareProc func(int) int
)

// SquareOfSum sums myArray with procSum then squares it with procSquare.
func SquareOfSum(myArray []int, procSquare SquareProc, procSum SumProc) int {
	return pk.Compose(procSum, procSquare)(myArray)
}

// ProcSquareNumber and ProcSumArray are the procs SquareOfSum is called with.
var (
	ProcSquareNumber SquareProc = func(x int) int { return x * x }
	ProcSumArray     SumProc    = func(xs []int) int {
		return pk.Reduce(xs, 0, func(acc, x int) int { return acc + x })
	}
)

// Combination is nCr by partial application: fix n, then choose r.
// r outside [0, n] yields 0.
func Combination(number int) func(r int) *big.Int {
	return pk.Partial(choose, number)
}

func choose(n, r int) *big.Int {
	if r < 0 || r > n {
		return big.NewInt(0)
	}
	return new(big.Int).Binomial(int64(n), int64(r))
}

// PowerFunction raises x to z exactly. A negative exponent gives a
// fraction, so 2 to the -1 is 1/2. Zero to a negative power is undefined
// and returns nil.
func PowerFunction(x, z int) *big.Rat {
	abs := int64(z)
	if abs < 0 {
		abs = -abs
	}
	p := new(big.Int).Exp(big.NewInt(int64(x)), big.NewInt(abs), nil)
	r := new(big.Rat).SetInt(p)
	if z >= 0 {
		return r
	}
	if p.Sign() == 0 {
		return nil
	}
	return r.Inv(r)
}

// RaiseToPower is PowerFunction curried on its base.
var RaiseToPower = pk.Curry(PowerFunction)

// PalindromicPrimes returns the first n primes that read the same
// backwards, evaluated lazily over the naturals.
func PalindromicPrimes(n int) []int {
	primes, _ := PalindromicPrimesContext(context.Background(), n)
	return primes
}

// PalindromicPrimesContext is PalindromicPrimes that gives up when ctx is
// done.
func PalindromicPrimesContext(ctx context.Context, n int) ([]int, error) {
	naturals := pk.WithContext(ctx, pk.Naturals(2))
	candidates := pk.FilterSeq(naturals, pk.Predicate[int](isPalindrome).And(IsPrime))
	primes := pk.First(candidates, n)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return primes, nil
}

func isPalindrome(n int) bool {
	s := strconv.Itoa(n)
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}
	return true
}
