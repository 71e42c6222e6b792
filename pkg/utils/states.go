package utils

import (
	"strings"

	apperrors "github.com/ayushvyasgit/storefront-utils/pkg/errors"
)

// NigerianState is one of the 36 states or the Federal Capital Territory.
type NigerianState string

const (
	StateAbia       NigerianState = "Abia"
	StateAdamawa    NigerianState = "Adamawa"
	StateAkwaIbom   NigerianState = "Akwa Ibom"
	StateAnambra    NigerianState = "Anambra"
	StateBauchi     NigerianState = "Bauchi"
	StateBayelsa    NigerianState = "Bayelsa"
	StateBenue      NigerianState = "Benue"
	StateBorno      NigerianState = "Borno"
	StateCrossRiver NigerianState = "Cross River"
	StateDelta      NigerianState = "Delta"
	StateEbonyi     NigerianState = "Ebonyi"
	StateEdo        NigerianState = "Edo"
	StateEkiti      NigerianState = "Ekiti"
	StateEnugu      NigerianState = "Enugu"
	StateFCT        NigerianState = "FCT"
	StateGombe      NigerianState = "Gombe"
	StateImo        NigerianState = "Imo"
	StateJigawa     NigerianState = "Jigawa"
	StateKaduna     NigerianState = "Kaduna"
	StateKano       NigerianState = "Kano"
	StateKatsina    NigerianState = "Katsina"
	StateKebbi      NigerianState = "Kebbi"
	StateKogi       NigerianState = "Kogi"
	StateKwara      NigerianState = "Kwara"
	StateLagos      NigerianState = "Lagos"
	StateNasarawa   NigerianState = "Nasarawa"
	StateNiger      NigerianState = "Niger"
	StateOgun       NigerianState = "Ogun"
	StateOndo       NigerianState = "Ondo"
	StateOsun       NigerianState = "Osun"
	StateOyo        NigerianState = "Oyo"
	StatePlateau    NigerianState = "Plateau"
	StateRivers     NigerianState = "Rivers"
	StateSokoto     NigerianState = "Sokoto"
	StateTaraba     NigerianState = "Taraba"
	StateYobe       NigerianState = "Yobe"
	StateZamfara    NigerianState = "Zamfara"
)

// nigerianStates is in display order for address forms.
var nigerianStates = [...]NigerianState{
	StateAbia, StateAdamawa, StateAkwaIbom, StateAnambra, StateBauchi,
	StateBayelsa, StateBenue, StateBorno, StateCrossRiver, StateDelta,
	StateEbonyi, StateEdo, StateEkiti, StateEnugu, StateFCT,
	StateGombe, StateImo, StateJigawa, StateKaduna, StateKano,
	StateKatsina, StateKebbi, StateKogi, StateKwara, StateLagos,
	StateNasarawa, StateNiger, StateOgun, StateOndo, StateOsun,
	StateOyo, StatePlateau, StateRivers, StateSokoto, StateTaraba,
	StateYobe, StateZamfara,
}

// NigerianStates returns a copy of the state list in display order.
func NigerianStates() []NigerianState {
	return append([]NigerianState(nil), nigerianStates[:]...)
}

// IsNigerianState reports whether s is exactly one of the state names.
func IsNigerianState(s string) bool {
	return Contains(nigerianStates[:], NigerianState(s))
}

// ParseNigerianState matches s against the state names ignoring case and
// surrounding whitespace.
func ParseNigerianState(s string) (NigerianState, error) {
	name := strings.TrimSpace(s)
	for _, state := range nigerianStates {
		if strings.EqualFold(string(state), name) {
			return state, nil
		}
	}
	return "", apperrors.Validation("unknown Nigerian state: " + s)
}
