// Contract economics — pure cap-accounting functions. Total for any offer that
// passes Validate; they never panic on a structurally valid offer.
package contract

// TotalValue is the full face value of the deal: all base salary plus the
// signing bonus. Incentives are excluded from face value on purpose — the
// league office books them when earned, not when signed.
func TotalValue(o Offer) Money {
	total := o.SigningBonus
	for _, b := range o.BaseSalaryPerYear {
		total += b
	}
	return total
}

// AveragePerYear is the APY agents negotiate around: total value spread
// evenly across on-field years.
func AveragePerYear(o Offer) Money {
	if o.Years <= 0 {
		return 0
	}
	return TotalValue(o) / Money(o.Years)
}

// GuaranteedPercentage returns guaranteed money as a fraction of total value,
// in [0, 1]. Zero-value deals report zero.
func GuaranteedPercentage(o Offer) float64 {
	total := TotalValue(o)
	if total == 0 {
		return 0
	}
	return float64(o.GuaranteedMoney) / float64(total)
}

// BonusProration is the signing bonus's annual cap charge: the bonus spread
// over contract years plus void years. Void years dilute the charge without
// extending the on-field commitment.
func BonusProration(o Offer) Money {
	span := o.Years + o.VoidYears
	if span < 1 {
		span = 1
	}
	return o.SigningBonus / Money(span)
}

// CapHitYear1 is the first season's cap charge: year-one base salary plus
// bonus proration.
func CapHitYear1(o Offer) Money {
	if len(o.BaseSalaryPerYear) == 0 {
		return BonusProration(o)
	}
	return o.BaseSalaryPerYear[0] + BonusProration(o)
}

// DeadCapOnRelease is the cap charge left behind if the player is cut after
// yearsElapsed seasons: all unamortized bonus proration accelerates, plus any
// guaranteed base salary not yet earned. With offset language the figure is
// advisory — the release path applies the offset reduction itself.
func DeadCapOnRelease(o Offer, yearsElapsed int) Money {
	if yearsElapsed < 0 {
		yearsElapsed = 0
	}
	span := o.Years + o.VoidYears
	if span < 1 {
		span = 1
	}
	remaining := span - yearsElapsed
	if remaining < 0 {
		remaining = 0
	}
	dead := BonusProration(o) * Money(remaining)

	// Guarantees cover the bonus first; whatever is left guarantees base
	// salary in contract order.
	guaranteedBase := o.GuaranteedMoney - o.SigningBonus
	if guaranteedBase > 0 {
		earned := Money(0)
		for i := 0; i < yearsElapsed && i < len(o.BaseSalaryPerYear); i++ {
			earned += o.BaseSalaryPerYear[i]
		}
		if unpaid := guaranteedBase - earned; unpaid > 0 {
			dead += unpaid
		}
	}
	return dead
}

// RestructureProration returns the annual incremental cap charge created by
// converting part of a season's base salary into signing bonus after
// yearsElapsed seasons. The converted amount prorates over the seasons left,
// void years included.
func RestructureProration(o Offer, converted Money, yearsElapsed int) Money {
	if converted <= 0 {
		return 0
	}
	if yearsElapsed < 0 {
		yearsElapsed = 0
	}
	span := o.Years - yearsElapsed + o.VoidYears
	if span < 1 {
		span = 1
	}
	return converted / Money(span)
}
