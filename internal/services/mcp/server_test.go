package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"billnote/internal/core/platform"
	"billnote/internal/core/provenance"
	"billnote/internal/core/rulepack"
	"billnote/internal/services/mcp"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func connect(t *testing.T, o mcp.Options) *sdk.ClientSession {
	t.Helper()
	ctx := context.Background()
	st, ct := sdk.NewInMemoryTransports()

	ss, err := mcp.NewServer(o).Connect(ctx, st, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })

	cs, err := sdk.NewClient(&sdk.Implementation{Name: "test", Version: "v0"}, nil).Connect(ctx, ct, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })
	return cs
}

func call[T any](t *testing.T, cs *sdk.ClientSession, name string, args map[string]any) T {
	t.Helper()
	res, err := cs.CallTool(context.Background(), &sdk.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.False(t, res.IsError, "tool %s reported an error: %+v", name, res.Content)

	raw, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func errText(t *testing.T, res *sdk.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(*sdk.TextContent)
	require.True(t, ok, "content %T", res.Content[0])
	return tc.Text
}

func TestListTools(t *testing.T) {
	cs := connect(t, mcp.Options{Version: "v1.2.3"})

	res, err := cs.ListTools(context.Background(), nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
		require.NotNil(t, tool.Annotations, tool.Name)
		assert.True(t, tool.Annotations.ReadOnlyHint, tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"classify_video_link",
		"detect_video_platform",
		"extract_video_id",
		"list_platforms",
		"resolve_platform_source",
		"validate_platform_source",
	}, names)
}

func TestClassify(t *testing.T) {
	cs := connect(t, mcp.Options{})

	d := call[platform.Descriptor](t, cs, "classify_video_link", map[string]any{
		"input": "https://www.bilibili.com/video/BV1xx411c7mD",
	})
	assert.Equal(t, platform.Bilibili, d.Tag)
	assert.True(t, d.IsValid)
	assert.True(t, d.IsSupported)
	assert.False(t, d.Blocked)

	zh := call[platform.Descriptor](t, cs, "classify_video_link", map[string]any{
		"input":    "https://youtu.be/dQw4w9WgXcQ",
		"language": "zh",
	})
	assert.Equal(t, platform.YouTube, zh.Tag)
	assert.Equal(t, platform.DisplayNameIn(platform.YouTube, language.SimplifiedChinese), zh.DisplayName)
}

func TestDetect(t *testing.T) {
	cs := connect(t, mcp.Options{})

	info := call[platform.Info](t, cs, "detect_video_platform", map[string]any{
		"input": "https://m.youtube.com/watch?v=dQw4w9WgXcQ",
	})
	assert.Equal(t, platform.YouTube, info.Tag)
	assert.Equal(t, "m.youtube.com", info.Host)

	res, err := cs.CallTool(context.Background(), &sdk.CallToolParams{
		Name:      "detect_video_platform",
		Arguments: map[string]any{"input": "https://example.com/x"},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, errText(t, res), "UNSUPPORTED_PLATFORM: ")
}

func TestExtractVideoID(t *testing.T) {
	cs := connect(t, mcp.Options{})

	ref := call[platform.VideoRef](t, cs, "extract_video_id", map[string]any{
		"input": "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	})
	assert.Equal(t, platform.VideoRef{Platform: platform.YouTube, VideoID: "dQw4w9WgXcQ"}, ref)

	res, err := cs.CallTool(context.Background(), &sdk.CallToolParams{
		Name:      "extract_video_id",
		Arguments: map[string]any{"input": "https://b23.tv/xYz12Ab"},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, errText(t, res), "VIDEO_ID_EXTRACTION_FAILED: ")
}

func TestListPlatforms(t *testing.T) {
	cs := connect(t, mcp.Options{})

	out := call[mcp.ListOutput](t, cs, "list_platforms", map[string]any{})
	want := platform.Default().Selectable()
	assert.Equal(t, want, out.Platforms)
}

func TestResolveAndValidate(t *testing.T) {
	cs := connect(t, mcp.Options{})

	cases := []struct {
		url, asserted string
		want          provenance.Source
	}{
		{"https://www.bilibili.com/video/BV1xx411c7mD", "", provenance.AutoDetected},
		{"https://www.bilibili.com/video/BV1xx411c7mD", "youtube", provenance.UserProvided},
		{"https://example.com/clip", "", provenance.Unknown},
		{"", "", provenance.Unknown},
	}
	for _, c := range cases {
		out := call[mcp.ResolveOutput](t, cs, "resolve_platform_source", map[string]any{
			"video_url": c.url,
			"platform":  c.asserted,
		})
		assert.Equal(t, c.want, out.PlatformSource, "%q/%q", c.url, c.asserted)
		assert.Equal(t, c.want, out.Info.Source)
	}

	good := call[provenance.Result](t, cs, "validate_platform_source", map[string]any{
		"video_url":       "https://youtu.be/dQw4w9WgXcQ",
		"platform":        "youtube",
		"platform_source": "auto_detected",
	})
	assert.True(t, good.Valid)

	bad := call[provenance.Result](t, cs, "validate_platform_source", map[string]any{
		"video_url":       "https://youtu.be/dQw4w9WgXcQ",
		"platform":        "bilibili",
		"platform_source": "auto_detected",
	})
	assert.False(t, bad.Valid)
	assert.Equal(t, provenance.ReasonMismatch, bad.Reason)
	assert.NotEmpty(t, bad.Message)
}

func TestCustomClassifier(t *testing.T) {
	pack, err := rulepack.Parse([]byte(`{"version":1,"platforms":[
		{"tag":"vimeo","priority":1,"supported":true,"patterns":["^https://vimeo\\.com/"]}
	]}`))
	require.NoError(t, err)
	cs := connect(t, mcp.Options{Classifier: platform.New(pack)})

	d := call[platform.Descriptor](t, cs, "classify_video_link", map[string]any{"input": "https://vimeo.com/12345"})
	assert.Equal(t, platform.Tag("vimeo"), d.Tag)

	out := call[mcp.ResolveOutput](t, cs, "resolve_platform_source", map[string]any{"video_url": "https://vimeo.com/12345"})
	assert.Equal(t, provenance.AutoDetected, out.PlatformSource)

	list := call[mcp.ListOutput](t, cs, "list_platforms", map[string]any{})
	assert.NotNil(t, list.Platforms)
	assert.Empty(t, list.Platforms)
}
