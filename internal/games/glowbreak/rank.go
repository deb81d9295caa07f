package glowbreak

// Rank is the grade awarded for a cleared level.
type Rank int

const (
	RankNone Rank = iota
	RankD
	RankC
	RankB
	RankA
	RankS
)

func (r Rank) String() string {
	switch r {
	case RankS:
		return "S"
	case RankA:
		return "A"
	case RankB:
		return "B"
	case RankC:
		return "C"
	case RankD:
		return "D"
	default:
		return "-"
	}
}

// ParseRank converts a stored letter back to a Rank.
func ParseRank(s string) Rank {
	switch s {
	case "S":
		return RankS
	case "A":
		return RankA
	case "B":
		return RankB
	case "C":
		return RankC
	case "D":
		return RankD
	default:
		return RankNone
	}
}

// TargetScore is the score a level expects for the higher grades.
func TargetScore(level int) float64 {
	return 1000 + float64(max(level, 1)-1)*500
}

// ComputeRank grades a cleared level from the misses, the best combo and
// the score reached.
func ComputeRank(missCount, maxCombo int, score, target float64) Rank {
	switch {
	case missCount == 0 && maxCombo >= 20 && score >= target*1.5:
		return RankS
	case missCount <= 1 && maxCombo >= 15 && score >= target*1.2:
		return RankA
	case missCount <= 2 && maxCombo >= 10 && score >= target:
		return RankB
	case missCount <= 3:
		return RankC
	default:
		return RankD
	}
}
