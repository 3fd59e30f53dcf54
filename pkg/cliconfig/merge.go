package cliconfig

// MergeConfig merges source config into target, updating sources tracking.
// Only non-zero values from source are applied.
func MergeConfig(target, source *CLIConfig, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	if source.Alphabet != "" {
		target.Alphabet = source.Alphabet
		target.Sources["alphabet"] = sourceType
	}
	if source.MinLength != 0 {
		target.MinLength = source.MinLength
		target.Sources["minLength"] = sourceType
	}
	if len(source.Blocklist) > 0 {
		target.Blocklist = source.Blocklist
		target.Sources["blocklist"] = sourceType
	}
	if source.DisableBlocklist {
		target.DisableBlocklist = true
		target.Sources["blocklist"] = sourceType
	}
	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
		target.Sources["logLevel"] = sourceType
	}
	if source.LogFormat != "" {
		target.LogFormat = source.LogFormat
		target.Sources["logFormat"] = sourceType
	}
}
