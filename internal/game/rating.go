package game

import "math/rand"

// Resolver turns a rating policy into a concrete rating. Flip is the coin
// used for the ALL policy; nil means a fresh fair coin on every call.
type Resolver struct {
	Flip func() bool
}

func fairCoin() bool {
	return rand.Intn(2) == 0
}

func (r Resolver) Resolve(policy RatingPolicy) Rating {
	switch policy {
	case PolicyAll:
		flip := r.Flip
		if flip == nil {
			flip = fairCoin
		}
		if flip() {
			return RatingPG13
		}
		return RatingPG
	case PolicyPG13:
		return RatingPG13
	default:
		return RatingPG
	}
}

// ResolveRating resolves policy with a fair coin. An empty policy means the
// guild never configured one and resolves to PG.
func ResolveRating(policy RatingPolicy) Rating {
	return Resolver{}.Resolve(policy)
}
