package glowbreak

// Reward is what clearing a level grants.
type Reward struct {
	Lives    int
	Score    float64
	Credits  int
	Complete bool // The campaign ends after this level
}

// RewardFor returns the reward for clearing level.
func RewardFor(level int, mode GameMode) Reward {
	switch tier := BossTier(level); {
	case tier == 0 && mode == ModeEndless:
		return Reward{Score: 100}
	case tier == 0:
		return Reward{Lives: 1}
	case tier == 1:
		return Reward{Lives: 2, Score: 300}
	case tier == 2:
		return Reward{Lives: 3, Score: 500, Credits: 1}
	case tier == 3:
		return Reward{Lives: 3, Score: 600, Credits: 1}
	default:
		return Reward{Lives: 3, Score: 800, Credits: 1, Complete: mode == ModeCampaign}
	}
}
