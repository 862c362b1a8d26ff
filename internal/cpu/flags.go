package cpu

import "github.com/sm83dev/go-sm83/pkg/bits"

// Flag is a bit index into the F register. Only the high nibble carries
// meaning; the low nibble always reads as zero.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// isFlagSet returns true if the given flag is set.
func (r *Registers) isFlagSet(flag Flag) bool {
	return bits.Test(r.F, flag)
}

// setFlag sets the given flag.
func (r *Registers) setFlag(flag Flag) {
	r.F = bits.Set(r.F, flag)
}

// clearFlag clears the given flag.
func (r *Registers) clearFlag(flag Flag) {
	r.F = bits.Reset(r.F, flag)
}

// carryBit returns 1 if the carry flag is set, 0 otherwise.
func (r *Registers) carryBit() uint8 {
	return bits.Val(r.F, FlagCarry)
}

// flagSetting names one flag and the state it should take. Build them with
// flagZ, flagN, flagH and flagC.
type flagSetting struct {
	flag Flag
	on   bool
}

func flagZ(on bool) flagSetting { return flagSetting{FlagZero, on} }
func flagN(on bool) flagSetting { return flagSetting{FlagSubtract, on} }
func flagH(on bool) flagSetting { return flagSetting{FlagHalfCarry, on} }
func flagC(on bool) flagSetting { return flagSetting{FlagCarry, on} }

// setFlags applies a batch of flag settings in one update. Flags not named
// keep their previous value; executors never mutate flags any other way.
func (r *Registers) setFlags(settings ...flagSetting) {
	for _, s := range settings {
		if s.on {
			r.F = bits.Set(r.F, s.flag)
		} else {
			r.F = bits.Reset(r.F, s.flag)
		}
	}
}
