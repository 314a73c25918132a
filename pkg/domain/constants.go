package domain

// Caesar shift bounds as exposed to users.
const (
	MinShift     = 1
	MaxShift     = 25
	DefaultShift = 3
)

// alphabetSize is the rotation modulus of the Caesar cipher.
const alphabetSize = 26

// ClampShift forces a user supplied shift into [MinShift, MaxShift].
func ClampShift(shift int) int {
	if shift < MinShift {
		return MinShift
	}
	if shift > MaxShift {
		return MaxShift
	}
	return shift
}

// NormalizeShift maps any integer shift into [0, 26).
func NormalizeShift(shift int) int {
	return ((shift % alphabetSize) + alphabetSize) % alphabetSize
}
