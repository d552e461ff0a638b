package apmath

import (
	"reflect"
	"sync"
)

// Pi returns pi at the precision of like.
func Pi[T Real[T]](like T) T { return piAt(like, like.Prec()) }

type piKey struct {
	t    reflect.Type
	prec uint32
}

var piCache sync.Map // piKey -> T

// piAt computes pi with Machin's formula, pi = 16*atan(1/5) - 4*atan(1/239),
// caching the result per (type, precision) the way decimal math libraries
// cache pi(p).
func piAt[T Real[T]](like T, prec uint32) T {
	key := piKey{reflect.TypeOf(like), prec}
	if v, ok := piCache.Load(key); ok {
		return v.(T)
	}
	x := like.WithPrec(prec + 10)
	one := x.FromInt64(1)
	a := atanTaylor(one.Quo(x.FromInt64(5))).Mul(x.FromInt64(16))
	b := atanTaylor(one.Quo(x.FromInt64(239))).Mul(x.FromInt64(4))
	p := a.Sub(b).WithPrec(prec)
	piCache.Store(key, p)
	return p
}

func twoPiAt[T Real[T]](like T, prec uint32) T {
	p := piAt(like, prec)
	return p.Add(p)
}

func halfPiAt[T Real[T]](like T, prec uint32) T {
	return piAt(like, prec).Quo(like.FromInt64(2).WithPrec(prec))
}
