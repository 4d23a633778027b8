package serve

import (
	"context"
	"flag"
	"fmt"
	"net"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"

	"github.com/nelhage/pentago/analysis"
	"github.com/nelhage/pentago/cmd/internal/opt"
)

type Command struct {
	port int
	mm   opt.Minimax
}

func (*Command) Name() string     { return "serve" }
func (*Command) Synopsis() string { return "Serve position analysis via GRPC" }
func (*Command) Usage() string {
	return `serve [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.port, "port", 55430, "bind port")
	c.mm.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.mm.BuildConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("search options")
	}
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", c.port))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to listen")
	}
	log.Info().Int("port", c.port).Msg("listening")

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(analysis.LoggingInterceptor(*zerolog.Ctx(ctx))),
	)
	analysis.Register(grpcServer, analysis.NewServer(cfg))

	go func() {
		<-ctx.Done()
		grpcServer.GracefulStop()
	}()
	if err := grpcServer.Serve(lis); err != nil {
		log.Error().Err(err).Msg("serve")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
