package gdapi

import "strconv"

// Difficulty is the in-game rating of a level.
type Difficulty int

const (
	DifficultyNA Difficulty = iota - 1
	DifficultyAuto
	DifficultyEasy
	DifficultyNormal
	DifficultyHard
	DifficultyHarder
	DifficultyInsane
	DifficultyDemon
	DifficultyDemonEasy
	DifficultyDemonMedium
	DifficultyDemonInsane
	DifficultyDemonExtreme
)

func (d Difficulty) IsDemon() bool {
	return d >= DifficultyDemon && d <= DifficultyDemonExtreme
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyAuto:
		return "auto"
	case DifficultyEasy:
		return "easy"
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	case DifficultyHarder:
		return "harder"
	case DifficultyInsane:
		return "insane"
	case DifficultyDemon:
		return "demon"
	case DifficultyDemonEasy:
		return "demon-easy"
	case DifficultyDemonMedium:
		return "demon-medium"
	case DifficultyDemonInsane:
		return "demon-insane"
	case DifficultyDemonExtreme:
		return "demon-extreme"
	default:
		return "na"
	}
}

func difficultyFromValue(v int) Difficulty {
	if v < int(DifficultyAuto) || v > int(DifficultyDemonExtreme) {
		return DifficultyNA
	}
	return Difficulty(v)
}

// decodeDifficulty derives the difficulty from the level segment's key/value
// pairs: 8 = stars numerator, 9 = stars denominator, 17 = demon flag,
// 25 = auto flag, 43 = demon difficulty. All three numeric keys must be
// present for a rating to exist.
func decodeDifficulty(kv map[string]string) Difficulty {
	num, numOK := atoiKey(kv, "8")
	denom, denomOK := atoiKey(kv, "9")
	demon, demonOK := atoiKey(kv, "43")
	if !numOK || !denomOK || !demonOK {
		return DifficultyNA
	}

	return calcDifficulty(kv["25"] == "1", num, denom, kv["17"] == "1", demon)
}

func calcDifficulty(auto bool, num, denom int, isDemon bool, demon int) Difficulty {
	if auto {
		return DifficultyAuto
	}
	if denom == 0 {
		return DifficultyNA
	}

	if isDemon {
		fixed := min(max(demon, 0), 6)
		if fixed != 0 {
			fixed -= 2
		}
		return difficultyFromValue(int(DifficultyDemon) + fixed)
	}

	val := num / denom
	return difficultyFromValue(min(max(val, -1), 10))
}

func atoiKey(kv map[string]string, key string) (int, bool) {
	raw, ok := kv[key]
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
