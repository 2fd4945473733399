package main

// Options holds the command line of navlocale.
type Options struct {
	Source    string   `goopt:"short:s;default:host;desc:Environment to query (host or static)"`
	Env       string   `goopt:"short:e;desc:Shell-style KEY=VALUE assignments applied on top of the process environment"`
	List      []string `goopt:"desc:Ordered preferred languages (static source)"`
	Preferred string   `goopt:"desc:Single preferred language (static source)"`
	Legacy    string   `goopt:"desc:Legacy user language (static source)"`
	Format    string   `goopt:"short:f;default:text;desc:Output format (text, json or shell)"`
	Debug     bool     `goopt:"short:d;desc:Log which signal produced the locale"`
}

const (
	sourceHost   = "host"
	sourceStatic = "static"

	formatText  = "text"
	formatJSON  = "json"
	formatShell = "shell"
)
