package config

// AnimationConfig holds nominal clip durations (seconds) and the velocity
// thresholds the selector uses to pick locomotion states.
type AnimationConfig struct {
	RollDuration  float64 `yaml:"roll_duration"`
	SlashDuration float64 `yaml:"slash_duration"` // used when the weapon has no cooldown
	ParryDuration float64 `yaml:"parry_duration"`
	JumpDuration  float64 `yaml:"jump_duration"`
	DeathDuration float64 `yaml:"death_duration"`

	JumpThreshold float64 `yaml:"jump_threshold"` // vertical velocity
	WalkThreshold float64 `yaml:"walk_threshold"` // horizontal speed
	RunThreshold  float64 `yaml:"run_threshold"`  // horizontal speed while sprinting
}

type AnimationDef struct {
	Duration      float64
	Interruptible bool
}

// Def returns the nominal duration and interruptibility of a state.
// slash is the owner's weapon cooldown.
func (c AnimationConfig) Def(state AnimState, slash float64) AnimationDef {
	switch state {
	case AnimRoll:
		return AnimationDef{Duration: c.RollDuration}
	case AnimParry:
		return AnimationDef{Duration: c.ParryDuration}
	case AnimSlash:
		if slash <= 0 {
			slash = c.SlashDuration
		}
		return AnimationDef{Duration: slash}
	case AnimJump:
		return AnimationDef{Duration: c.JumpDuration, Interruptible: true}
	case AnimDeath:
		return AnimationDef{Duration: c.DeathDuration}
	}
	return AnimationDef{Interruptible: true}
}
