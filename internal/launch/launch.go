// Package launch runs the external commands bound to command keys.
package launch

import (
	"os/exec"

	"github.com/rs/zerolog/log"
)

// Launcher starts an external command. Failures are the command's problem,
// not the keyboard's; implementations report them without propagating.
type Launcher interface {
	Launch(cmd string, args []string)
}

// ExecLauncher starts commands detached from the keyboard process.
type ExecLauncher struct{}

func (ExecLauncher) Launch(cmd string, args []string) {
	c := exec.Command(cmd, args...)
	if err := c.Start(); err != nil {
		log.Error().Err(err).Str("cmd", cmd).Msg("cannot launch command")
		return
	}
	log.Debug().Str("cmd", cmd).Strs("args", args).Int("pid", c.Process.Pid).Msg("launched")
	go func() {
		if err := c.Wait(); err != nil {
			log.Warn().Err(err).Str("cmd", cmd).Msg("command exited with error")
		}
	}()
}

// NopLauncher ignores launches, for dry runs and tests.
type NopLauncher struct{}

func (NopLauncher) Launch(cmd string, args []string) {
	log.Info().Str("cmd", cmd).Strs("args", args).Msg("would launch")
}
