package launcher

import (
	"fmt"
	"path/filepath"
	"strings"

	"limeal.fr/launchyargs/game/folder"
	"limeal.fr/launchyargs/game/profile"
)

// CommandLine describes the java side of a launch. Build turns it into the
// full argument vector: java, jvm arguments, main class, game arguments.
// Nothing is executed.
type CommandLine struct {
	JavaPath      string
	Memory        profile.Memory
	Classpath     []string // jars, in order; relative entries are resolved against the game directory
	ExtraJavaArgs []string
}

func NewCommandLine(javaPath string) *CommandLine {
	return &CommandLine{
		JavaPath:      javaPath,
		Memory:        profile.DefaultMemory(),
		ExtraJavaArgs: []string{},
	}
}

func (c *CommandLine) AddJavaArgs(javaArgs ...string) {
	c.ExtraJavaArgs = append(c.ExtraJavaArgs, javaArgs...)
}

// JVMArgs returns the arguments placed before the main class.
func (c *CommandLine) JVMArgs(infos folder.GameInfos, f folder.GameFolder) []string {
	args := append([]string{}, c.ExtraJavaArgs...)
	args = append(args, c.Memory.ToArgs()...)

	nativesPath := f.NativesDir(infos.GameDir)
	if !hasPrefixArg(args, "-Djava.library.path=") {
		args = append(args, "-Djava.library.path="+nativesPath)
	}
	if !hasPrefixArg(args, "-Dorg.lwjgl.librarypath=") {
		args = append(args, "-Dorg.lwjgl.librarypath="+nativesPath)
	}

	if len(c.Classpath) > 0 {
		cp := make([]string, 0, len(c.Classpath))
		for _, entry := range c.Classpath {
			if !filepath.IsAbs(entry) {
				entry = filepath.Join(infos.GameDir, entry)
			}
			cp = append(cp, entry)
		}
		args = append(args, "-cp", strings.Join(cp, string(filepath.ListSeparator)))
	}

	return args
}

// Build returns the whole command, starting with the java executable.
func (c *CommandLine) Build(g *GameType, infos folder.GameInfos, f folder.GameFolder, auth profile.AuthInfos) ([]string, error) {
	if c.JavaPath == "" {
		return nil, fmt.Errorf("java path is not set")
	}

	gameArgs, err := g.LaunchArgs(infos, f, auth)
	if err != nil {
		return nil, err
	}

	cmd := []string{c.JavaPath}
	cmd = append(cmd, c.JVMArgs(infos, f)...)
	cmd = append(cmd, g.MainClass(infos))
	return append(cmd, gameArgs...), nil
}

func hasPrefixArg(args []string, prefix string) bool {
	for _, a := range args {
		if strings.HasPrefix(a, prefix) {
			return true
		}
	}
	return false
}
