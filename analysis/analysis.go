// Package analysis exposes the minimax search over gRPC as the
// pentago.Analyzer service. Requests and responses travel as
// google.protobuf.Struct messages, so no generated code is needed.
package analysis

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/nelhage/pentago/pentago"
)

const (
	ServiceName   = "pentago.Analyzer"
	analyzeMethod = "/" + ServiceName + "/Analyze"
)

var (
	ErrNoBoard   = errors.New("request has no board")
	ErrBadPlayer = errors.New("player must be 1 or -1")
)

type Request struct {
	Board string
	// Player is the side to search for; NoColor picks the side with
	// fewer marbles, White on ties.
	Player    pentago.Color
	WinLength int
	Depth     int
}

type Response struct {
	Move      string
	Found     bool
	Score     float64
	Evaluated uint64
}

func (r *Request) Struct() (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"board":      r.Board,
		"player":     int(r.Player),
		"win_length": r.WinLength,
		"depth":      r.Depth,
	})
}

func DecodeRequest(s *structpb.Struct) (Request, error) {
	f := s.GetFields()
	r := Request{
		Board:     f["board"].GetStringValue(),
		WinLength: int(f["win_length"].GetNumberValue()),
		Depth:     int(f["depth"].GetNumberValue()),
	}
	if r.Board == "" {
		return r, ErrNoBoard
	}
	switch p := f["player"].GetNumberValue(); p {
	case 0, 1, -1:
		r.Player = pentago.Color(p)
	default:
		return r, fmt.Errorf("player %v: %w", p, ErrBadPlayer)
	}
	return r, nil
}

func (r *Response) Struct() (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"move":      r.Move,
		"found":     r.Found,
		"score":     r.Score,
		"evaluated": r.Evaluated,
	})
}

func DecodeResponse(s *structpb.Struct) Response {
	f := s.GetFields()
	return Response{
		Move:      f["move"].GetStringValue(),
		Found:     f["found"].GetBoolValue(),
		Score:     f["score"].GetNumberValue(),
		Evaluated: uint64(f["evaluated"].GetNumberValue()),
	}
}

type AnalyzerServer interface {
	Analyze(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

func analyzeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AnalyzerServer).Analyze(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: analyzeMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AnalyzerServer).Analyze(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AnalyzerServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Analyze",
			Handler:    analyzeHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pentago/analyzer",
}

func Register(s grpc.ServiceRegistrar, srv AnalyzerServer) {
	s.RegisterService(&ServiceDesc, srv)
}
