package profile

import "strconv"

type Memory struct {
	Xmx int `json:"xmx" yaml:"xmx" env:"XMX"` // The maximum memory to use in GB
	Xms int `json:"xms" yaml:"xms" env:"XMS"` // The minimum memory to use in GB
}

func DefaultMemory() Memory {
	return Memory{Xmx: 4, Xms: 2}
}

func (m Memory) ToArgs() []string {
	return []string{
		"-Xmx" + strconv.Itoa(m.Xmx) + "G",
		"-Xms" + strconv.Itoa(m.Xms) + "G",
	}
}
