package cargo

// lockfileDTO mirrors the on-disk TOML structure of a Cargo lockfile.
// Sections other than the format version and [[package]] ([metadata],
// [[patch.unused]]) carry nothing the comparison needs and are ignored.
type lockfileDTO struct {
	Version  int          `toml:"version"`
	Packages []packageDTO `toml:"package"`
}

// packageDTO is one [[package]] entry.
type packageDTO struct {
	Name         string   `toml:"name"`
	Version      string   `toml:"version"`
	Source       string   `toml:"source"`
	Checksum     string   `toml:"checksum"`
	Dependencies []string `toml:"dependencies"`
}
