package analysis

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/nelhage/pentago/ai"
	"github.com/nelhage/pentago/notation"
	"github.com/nelhage/pentago/pentago"
)

type cache struct {
	sync.Mutex
	player *ai.MinimaxAI
	cfg    ai.MinimaxConfig
}

func (c *cache) getPlayer(base ai.MinimaxConfig, depth int) *ai.MinimaxAI {
	if depth <= 0 {
		depth = base.Depth
	}
	if c.player == nil || c.cfg.Depth != depth {
		c.cfg = base
		c.cfg.Depth = depth
		c.player = ai.NewMinimax(c.cfg)
	}
	return c.player
}

// Server answers Analyze calls with a single cached searcher; calls are
// serialized.
type Server struct {
	base  ai.MinimaxConfig
	cache cache
}

func NewServer(base ai.MinimaxConfig) *Server {
	return &Server{base: base}
}

func (s *Server) Analyze(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := DecodeRequest(in)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	resp, err := s.analyze(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.Struct()
}

func (s *Server) analyze(ctx context.Context, req Request) (*Response, error) {
	b, err := notation.ParseBoard(req.Board, req.WinLength)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "board: %v", err)
	}
	me := req.Player
	if me == pentago.NoColor {
		me = pentago.White
		if b.Count(pentago.White) > b.Count(pentago.Black) {
			me = pentago.Black
		}
	}

	s.cache.Lock()
	defer s.cache.Unlock()
	player := s.cache.getPlayer(s.base, req.Depth)
	res, st := player.Analyze(ctx, b, me)

	resp := &Response{
		Found:     res.Found,
		Score:     res.Score,
		Evaluated: st.Evaluated,
	}
	if res.Found {
		resp.Move = notation.FormatMove(res.Move)
	}
	return resp, nil
}

// LoggingInterceptor attaches logger to each call's context and logs
// the outcome of every call.
func LoggingInterceptor(logger zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		ctx = logger.WithContext(ctx)
		resp, err := handler(ctx, req)
		logger.Info().
			Str("method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Dur("elapsed", time.Since(start)).
			Msg("rpc")
		return resp, err
	}
}
