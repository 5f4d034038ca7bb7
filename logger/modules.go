package logger

type ModuleMask uint64
type Module uint

const ModuleMaskAll ModuleMask = 0xFFFFFFFFFFFFFFFF

// The standard modules of the application. Debug and info logging is
// disabled per module unless explicitly enabled with EnableModules.
const (
	ModApp Module = iota + 1
	ModSource
	ModChip
	ModRoll
	ModPitch
	ModUI

	endStandardMods
)

var modNames = []string{
	"<error>", "app", "source", "chip", "roll", "pitch", "ui",
}

var modEnabledMask ModuleMask = 0

func ModuleByName(name string) (Module, bool) {
	for idx, s := range modNames {
		if s == name {
			return Module(idx), true
		}
	}
	return Module(0xFFFFFFFF), false
}

func ModuleNames() []string {
	return modNames[1:endStandardMods]
}

func EnableModules(mask ModuleMask) {
	modEnabledMask |= mask
}

func DisableModules(mask ModuleMask) {
	modEnabledMask &^= mask
}

func (mod Module) Mask() ModuleMask {
	return 1 << ModuleMask(mod)
}

func (mod Module) Name() string {
	return modNames[mod]
}

// Enabled reports whether a message at the given level should be
// emitted for this module. Warnings and above are always emitted.
func (mod Module) Enabled(level Level) bool {
	if level >= WarnLevel {
		return true
	}
	return modEnabledMask&mod.Mask() != 0
}
