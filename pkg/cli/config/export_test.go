package config

// NewCorpusForTest creates a Corpus config for testing purposes
func NewCorpusForTest(configPath, contentDir, policy string, noEmbedded bool) *Corpus {
	return &Corpus{
		configPath: configPath,
		contentDir: contentDir,
		policy:     policy,
		noEmbedded: noEmbedded,
	}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}
