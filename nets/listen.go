package nets

import (
	"net"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/vars"
	"golang.org/x/net/netutil"
)

type ServeAddr string

var _ configs.Configurable = ServeAddr("")

func (ServeAddr) ConfigPath() string {
	return "serve.addr"
}

const defaultServeAddr = "127.0.0.1:7979"

var addrFlag = cmds.Var[string]("-addr")

func (Module) ServeAddr(
	loader configs.Loader,
) ServeAddr {
	return ServeAddr(vars.FirstNonZero(
		*addrFlag,
		string(configs.Load[ServeAddr](loader)),
		defaultServeAddr,
	))
}

// MaxSessions caps the number of concurrently served connections. Every
// session runs its own program, so this bounds interpreter concurrency.
type MaxSessions int

var _ configs.Configurable = MaxSessions(0)

func (MaxSessions) ConfigPath() string {
	return "serve.max_sessions"
}

const defaultMaxSessions = 128

var maxSessionsFlag = cmds.Var[int]("-max-sessions")

func (Module) MaxSessions(
	loader configs.Loader,
) MaxSessions {
	return MaxSessions(vars.FirstNonZero(
		*maxSessionsFlag,
		int(configs.Load[MaxSessions](loader)),
		defaultMaxSessions,
	))
}

type Listen func(addr string) (net.Listener, error)

func (Module) Listen(
	maxSessions MaxSessions,
	logger logs.Logger,
) Listen {
	return func(addr string) (net.Listener, error) {
		ln, err := net.Listen("tcp", addr)
		if err != nil {
			return nil, err
		}
		ln = netutil.LimitListener(ln, int(maxSessions))
		logger.Info("listening",
			"addr", ln.Addr().String(),
			"max_sessions", int(maxSessions),
		)
		return ln, nil
	}
}
