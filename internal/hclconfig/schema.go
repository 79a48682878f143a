package hclconfig

// File is the decoded content of a config file.
type File struct {
	Strict *bool        `hcl:"strict,optional"`
	Output *OutputBlock `hcl:"output,block"`
	Log    *LogBlock    `hcl:"log,block"`
}

// OutputBlock configures the generated artifact.
type OutputBlock struct {
	Format *string `hcl:"format,optional"`
	Guard  *string `hcl:"guard,optional"`
}

// LogBlock configures logging.
type LogBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}
