package config

// Manifest represents the structure of the lockcmp.yaml comparison manifest.
type Manifest struct {
	Version string  `yaml:"version"`
	Verbose bool    `yaml:"verbose"`
	A       SideDTO `yaml:"a"`
	B       SideDTO `yaml:"b"`
}

// SideDTO describes one lockfile side of the comparison.
type SideDTO struct {
	Source  string   `yaml:"source"`
	Root    RootDTO  `yaml:"root"`
	Exclude []string `yaml:"exclude"`
}

// RootDTO optionally scopes a side to the dependency tree of one package.
type RootDTO struct {
	Name string `yaml:"name"`
	Hash string `yaml:"hash"`
}
