// This file is part of Padpointer.
//
// Padpointer is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Padpointer is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Padpointer.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jetsetilly/padpointer/backend"
	"github.com/jetsetilly/padpointer/backend/joydev"
	"github.com/jetsetilly/padpointer/backend/sdlpad"
	"github.com/jetsetilly/padpointer/easyterm"
	"github.com/jetsetilly/padpointer/logger"
	"github.com/jetsetilly/padpointer/modalflag"
	"github.com/jetsetilly/padpointer/notifications"
	"github.com/jetsetilly/padpointer/performance"
	"github.com/jetsetilly/padpointer/pointer"
	"github.com/jetsetilly/padpointer/prefs"
	"github.com/jetsetilly/padpointer/session"
	"github.com/jetsetilly/padpointer/statsview"
	"github.com/jetsetilly/padpointer/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the mode has a handler of
	// its own that must run before the program ends.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// communication between the main() function and the launch() function. SDL
// is initialised from the launch goroutine but the main thread is kept free
// of everything except signal handling
type mainSync struct {
	state chan stateRequest
}

// #mainthread
func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync)

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Stop(intChan)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate when to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DEVICES")
	showVersion := md.AddBool("version", false, "print version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	if *showVersion {
		fmt.Println(version.String())
		sync.state <- stateRequest{req: reqQuit}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "DEVICES":
		err = devices(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// newDriver creates the backend driver. the primary backend is always SDL.
// the returned function must be called when the driver is no longer needed
func newDriver(secondary string) (backend.Driver, func(), error) {
	sdl, err := sdlpad.NewDriver()
	if err != nil {
		return nil, nil, err
	}

	switch strings.ToLower(secondary) {
	case "sdl":
		return sdl, sdl.Quit, nil
	case "joydev":
		return backend.Mixed{
			PrimaryFrom:   sdl,
			SecondaryFrom: joydev.NewDriver(joydev.DefaultScan),
		}, sdl.Quit, nil
	}

	sdl.Quit()
	return nil, nil, fmt.Errorf("unknown secondary backend (%s)", secondary)
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	secondary := md.AddString("secondary", "sdl", "secondary backend: sdl or joydev")
	dryrun := md.AddBool("dryrun", false, "log pointer events instead of moving the pointer")
	echo := md.AddBool("echo", false, "echo log entries to the terminal")
	prefsOverride := md.AddString("prefs", "", "preference overrides: key::value; key::value")
	deadzoneX := md.AddFloat64("deadzonex", session.DefaultDeadzone, "deadzone of horizontal stick axes")
	deadzoneY := md.AddFloat64("deadzoney", session.DefaultDeadzone, "deadzone of vertical stick axes")
	console := md.AddBool("console", false, "interactive console")
	device := md.AddString("device", "", "identity of the preferred secondary device")
	profile := md.AddString("profile", "none", "run with profiler: none, cpu, mem, all")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *echo {
		logger.SetEcho(os.Stdout)
	}
	logger.Log(logger.Allow, "padpointer", version.String())

	if stats != nil && *stats {
		statsview.Launch(os.Stdout)
	}

	pref, err := session.NewPreferences()
	if err != nil {
		return err
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
		err = pref.ApplyCommandLine()
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "padpointer", "unknown preferences: %s", unused)
		}
		if err != nil {
			return err
		}
	}

	err = applyDeadzoneFlags(md, pref, *deadzoneX, *deadzoneY)
	if err != nil {
		return err
	}

	drv, quit, err := newDriver(*secondary)
	if err != nil {
		return err
	}
	defer quit()

	var em pointer.Emitter
	if *dryrun {
		em = pointer.NewLogging()
		if !*echo {
			logger.SetEcho(os.Stdout)
		}
	} else {
		em = pointer.NewRobot()
	}

	s, err := session.NewSession(drv, em, pref)
	if err != nil {
		return err
	}
	s.SetNotify(notifications.NewWriter(os.Stderr))
	if *device != "" {
		s.PreferDevice(backend.Identity(*device))
	}

	// the session is disposed before the program ends so the interrupt
	// signal is handled here rather than in main()
	sync.state <- stateRequest{req: reqNoIntSig}

	return performance.RunProfiler(prf, "padpointer", func() error {
		s.Start()
		defer s.Dispose()
		if !s.IsRunning() {
			return fmt.Errorf("controller session did not start")
		}

		intChan := make(chan os.Signal, 1)
		signal.Notify(intChan, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(intChan)

		if *console {
			return runConsole(s, intChan)
		}

		<-intChan
		return nil
	})
}

// applyDeadzoneFlags sets the deadzone of each axis only if its flag was set
// explicitly. an explicit flag takes precedence over the prefs flag. an axis
// without a flag keeps its current value
func applyDeadzoneFlags(md *modalflag.Modes, pref *session.Preferences, x float64, y float64) error {
	var err error
	md.Visit(func(flag string) {
		if err != nil {
			return
		}
		switch flag {
		case "deadzonex":
			err = pref.SetDeadzoneX(x)
		case "deadzoney":
			err = pref.SetDeadzoneY(y)
		}
	})
	return err
}

const consoleHelp = `s  start or stop
+  increase deadzone
-  decrease deadzone
d  list devices
l  show recent log entries
i  show statistics
q  quit
`

// deadzone adjustment made by the console
const deadzoneStep = 0.05

// readKeys calls read() from a new goroutine and forwards each key. the first
// read error is forwarded and ends the goroutine. closing done also ends the
// goroutine, once the current call to read() returns. the keys channel is
// closed when the goroutine ends
func readKeys(read func() (byte, error), done <-chan struct{}) (<-chan byte, <-chan error) {
	keys := make(chan byte)
	readErr := make(chan error, 1)

	go func() {
		defer close(keys)
		for {
			k, err := read()
			if err != nil {
				select {
				case readErr <- err:
				case <-done:
				}
				return
			}
			select {
			case keys <- k:
			case <-done:
				return
			}
		}
	}()

	return keys, readErr
}

func runConsole(s *session.Session, intChan chan os.Signal) error {
	var term easyterm.Terminal
	if err := term.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	defer term.CleanUp()

	term.CBreakMode()
	term.Print(consoleHelp)

	done := make(chan struct{})
	defer close(done)
	keys, readErr := readKeys(term.ReadKey, done)

	for {
		select {
		case <-intChan:
			return nil

		case err := <-readErr:
			return err

		case k, ok := <-keys:
			if !ok {
				return <-readErr
			}
			switch k {
			case 'q', 'Q', easyterm.KeyCtrlC, easyterm.KeyCtrlD, easyterm.KeyEsc:
				return nil

			case 's', 'S':
				if s.IsRunning() {
					s.Stop()
					term.Print("stopped\n")
				} else {
					s.Start()
					if s.IsRunning() {
						term.Print("running\n")
					}
				}

			case '+', '=', '-', '_':
				step := deadzoneStep
				if k == '-' || k == '_' {
					step = -step
				}
				pref := s.Prefs()
				err := pref.SetDeadzones(pref.DeadzoneX.Load()+step, pref.DeadzoneY.Load()+step)
				if err != nil {
					term.Print("%v\n", err)
				}
				term.Print("deadzone: %.2f %.2f\n", pref.DeadzoneX.Load(), pref.DeadzoneY.Load())

			case 'd', 'D':
				devs, err := s.Devices()
				if err != nil {
					term.Print("%v\n", err)
					break // switch
				}
				bound := s.BoundIdentity()
				for _, d := range devs {
					if d.ID == bound {
						term.Print("* %s\n", d)
					} else {
						term.Print("  %s\n", d)
					}
				}
				if len(devs) == 0 {
					term.Print("no secondary devices\n")
				}

			case 'l', 'L':
				w := &strings.Builder{}
				logger.WriteRecent(w)
				term.Print("%s", w.String())

			case 'i', 'I':
				term.Print("%s\n", s.Stats())

			case easyterm.KeyCarriageReturn:

			default:
				term.Print(consoleHelp)
			}
		}
	}
}

func devices(md *modalflag.Modes) error {
	md.NewMode()

	secondary := md.AddString("secondary", "sdl", "secondary backend: sdl or joydev")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	drv, quit, err := newDriver(*secondary)
	if err != nil {
		return err
	}
	defer quit()

	if primary, err := drv.Primary(); err == nil && primary.Connected() {
		fmt.Fprintln(md.Output, "primary controller connected")
	}

	enum, err := drv.NewEnumerator()
	if err != nil {
		return err
	}
	defer enum.Close()

	devs, err := enum.Devices()
	if err != nil {
		return err
	}

	if len(devs) == 0 {
		fmt.Fprintln(md.Output, "no secondary devices")
		return nil
	}

	for _, d := range devs {
		fmt.Fprintln(md.Output, d)
	}

	return nil
}
