package analysis

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
)

type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc}
}

// Dial opens a plaintext connection to an Analyzer server.
func Dial(addr string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)
	return grpc.NewClient(addr, opts...)
}

func (c *Client) Analyze(ctx context.Context, req Request, opts ...grpc.CallOption) (Response, error) {
	in, err := req.Struct()
	if err != nil {
		return Response{}, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, analyzeMethod, in, out, opts...); err != nil {
		return Response{}, err
	}
	return DecodeResponse(out), nil
}
