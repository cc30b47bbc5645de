package corpus

import (
	"context"
	"errors"
	"io"
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// apiError implements smithy.APIError for test assertions.
type apiError struct {
	code string
	msg  string
}

func (e *apiError) Error() string                 { return e.msg }
func (e *apiError) ErrorCode() string             { return e.code }
func (e *apiError) ErrorMessage() string          { return e.msg }
func (e *apiError) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

var errNoSuchKey = &apiError{code: "NoSuchKey", msg: "no such key"}

// mockS3 is an in-memory S3 backend for testing. Listing honors the
// prefix and "/" delimiter and pages one key at a time to exercise
// continuation handling.
type mockS3 struct {
	objects map[string][]byte
}

func (m *mockS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := m.objects[*in.Key]
	if !ok {
		return nil, errNoSuchKey
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(string(data)))}, nil
}

func (m *mockS3) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	prefix := aws.ToString(in.Prefix)
	var keys []string
	for k := range m.objects {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		if strings.Contains(k[len(prefix):], "/") {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	start := 0
	if in.ContinuationToken != nil {
		for i, k := range keys {
			if k == *in.ContinuationToken {
				start = i
				break
			}
		}
	}
	out := &s3.ListObjectsV2Output{}
	if start < len(keys) {
		out.Contents = []types.Object{{Key: aws.String(keys[start])}}
		if start+1 < len(keys) {
			out.NextContinuationToken = aws.String(keys[start+1])
		}
	}
	return out, nil
}

func TestS3SourceList(t *testing.T) {
	mock := &mockS3{objects: map[string][]byte{
		"corpus/chorales/a.mid":       []byte("a"),
		"corpus/chorales/b.mid":       []byte("b"),
		"corpus/chorales/deep/c.mid":  []byte("c"),
		"corpus/fugues/d.mid":         []byte("d"),
		"unrelated/chorales/e.mid":    []byte("e"),
		"corpus/chorales-other/f.mid": []byte("f"),
	}}
	src := NewS3(mock, "bucket", "corpus")
	got, err := src.List(context.Background(), "chorales")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"chorales/a.mid", "chorales/b.mid"}
	if len(got) != len(want) {
		t.Fatalf("List = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestS3SourceOpen(t *testing.T) {
	mock := &mockS3{objects: map[string][]byte{
		"corpus/chorales/a.mid": []byte("payload"),
	}}
	src := NewS3(mock, "bucket", "corpus")

	r, err := src.Open(context.Background(), "chorales/a.mid")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "payload" {
		t.Errorf("read %q, want %q", data, "payload")
	}

	if _, err := src.Open(context.Background(), "chorales/missing.mid"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open(missing) error = %v, want os.ErrNotExist", err)
	}
}
