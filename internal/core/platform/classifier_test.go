package platform

import (
	"sync"
	"testing"

	"billnote/internal/core/rulepack"
	perr "billnote/internal/platform/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestClassify(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		in   string
		want Tag
	}{
		{"bilibili video", "https://www.bilibili.com/video/BV1xx411c7xx/", Bilibili},
		{"b23 short link", "https://b23.tv/av123456", Bilibili},
		{"b23 with www", "https://www.b23.tv/xYz12Ab", Bilibili},
		{"bilibili bare host over http", "http://bilibili.com/video/av1", Bilibili},
		{"bilibili upper case", "HTTPS://WWW.BILIBILI.COM/VIDEO/BV1", Bilibili},
		{"youtube mobile", "https://m.youtube.com/watch?v=dQw4w9WgXcQ", YouTube},
		{"youtube www", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", YouTube},
		{"youtu.be", "http://youtu.be/dQw4w9WgXcQ", YouTube},
		{"youtube mixed case", "Https://YouTube.com/shorts/abcdefghijk", YouTube},
		{"unix path", "/home/user/videos/sample.mp4", Local},
		{"windows backslash", `C:\Users\me\a.mp4`, Local},
		{"windows forward slash", "d:/videos/a.mp4", Local},
		{"file scheme", "file:///tmp/a.mp4", Local},
		{"file scheme upper", "FILE:///tmp/a.mp4", Local},
		{"douyin", "https://www.douyin.com/video/123456789", Unknown},
		{"lookalike host", "https://bilibili.com.evil.io/video/BV1", Unknown},
		{"other site", "https://example.com/video/123", Unknown},
		{"plain text", "hello", Unknown},
		{"relative path", "videos/a.mp4", Unknown},
		{"empty", "", Unknown},
		{"whitespace", " \t\n ", Unknown},
		{"surrounding whitespace", "  https://youtu.be/dQw4w9WgXcQ  ", YouTube},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.in))
		})
	}
}

func mustPack(t *testing.T, js string) *rulepack.Pack {
	t.Helper()
	p, err := rulepack.Parse([]byte(js))
	require.NoError(t, err)
	return p
}

func TestClassify_PriorityFirst(t *testing.T) {
	t.Parallel()
	c := New(mustPack(t, `{"version":1,"platforms":[
		{"tag":"low","priority":1,"patterns":["^https://x\\.test/"]},
		{"tag":"high","priority":50,"patterns":["^https://"]}
	]}`))
	assert.Equal(t, Tag("high"), c.Classify("https://x.test/a"))
	assert.Equal(t, Unknown, c.Classify("ftp://x.test/a"))

	tie := New(mustPack(t, `{"version":1,"platforms":[
		{"tag":"first","priority":5,"patterns":["^a"]},
		{"tag":"second","priority":5,"patterns":["^a"]}
	]}`))
	assert.Equal(t, Tag("first"), tie.Classify("abc"))
}

func TestIsValidFormat(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want bool
	}{
		{"https://www.bilibili.com/video/BV1xx411c7xx/", true},
		{"https://example.com/anything", true},
		{"  https://youtu.be/dQw4w9WgXcQ ", true},
		{"mailto:someone@example.com", true},
		{"/home/user/a.mp4", true},
		{`C:\videos\a.mp4`, true},
		{"e:/videos/a.mp4", true},
		{"file:///tmp/a.mp4", true},
		{"file:relative", true},
		{"", false},
		{"not a url", false},
		{"https://", false},
		{"//cdn.example.com/a.mp4", false},
		{"/1video.mp4", false},
		{"http://exa mple.com/", false},
		{"videos/a.mp4", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsValidFormat(tc.in), "IsValidFormat(%q)", tc.in)
	}
}

func TestIsSupported(t *testing.T) {
	t.Parallel()
	assert.True(t, IsSupported("https://www.bilibili.com/video/BV1xx411c7xx/"))
	assert.True(t, IsSupported("https://youtu.be/dQw4w9WgXcQ"))
	assert.False(t, IsSupported("/home/user/a.mp4"))
	assert.False(t, IsSupported("https://www.douyin.com/video/1"))
	assert.False(t, IsSupported(""))
}

func TestIsBlocked(t *testing.T) {
	t.Parallel()
	assert.True(t, IsBlocked("https://www.DOUYIN.com/video/1"))
	assert.True(t, IsBlocked("https://v.kuaishou.com/abc"))
	assert.True(t, IsBlocked("  https://www.tiktok.com/@someone "))
	assert.False(t, IsBlocked("https://www.bilibili.com/video/BV1"))
	assert.False(t, IsBlocked(""))
}

func TestDescribe(t *testing.T) {
	t.Parallel()
	d := Describe("https://www.bilibili.com/video/BV1xx411c7xx/")
	assert.Equal(t, Descriptor{
		Tag:           Bilibili,
		DisplayName:   "Bilibili",
		IsValid:       true,
		IsSupported:   true,
		OriginalInput: "https://www.bilibili.com/video/BV1xx411c7xx/",
	}, d)

	d = Describe("https://www.douyin.com/video/123456789")
	assert.Equal(t, Unknown, d.Tag)
	assert.Equal(t, "Unknown platform", d.DisplayName)
	assert.True(t, d.IsValid)
	assert.False(t, d.IsSupported)
	assert.True(t, d.Blocked)

	d = Default().WithLanguage(language.SimplifiedChinese).Describe("/srv/a.mp4")
	assert.Equal(t, Local, d.Tag)
	assert.Equal(t, "本地视频", d.DisplayName)
	assert.True(t, d.IsValid)
	assert.False(t, d.IsSupported)

	d = Describe("")
	assert.Equal(t, Unknown, d.Tag)
	assert.False(t, d.IsValid)
	assert.Equal(t, "", d.OriginalInput)
}

func TestDisplayName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Bilibili", DisplayName(Bilibili))
	assert.Equal(t, "YouTube", DisplayName(YouTube))
	assert.Equal(t, "Local video", DisplayName(Local))
	assert.Equal(t, "Unknown platform", DisplayName(Unknown))
	assert.Equal(t, "Unknown platform", DisplayName(Tag("vimeo")))
	assert.Equal(t, "哔哩哔哩", DisplayNameIn(Bilibili, language.SimplifiedChinese))
	assert.Equal(t, "未知平台", DisplayNameIn(Tag(""), language.MustParse("zh-CN")))
	assert.Equal(t, "Bilibili", DisplayNameIn(Bilibili, language.French))
}

func TestWithLanguage_DoesNotMutateReceiver(t *testing.T) {
	t.Parallel()
	c := New(Default().pack)
	zh := c.WithLanguage(language.MustParse("zh-CN"))
	assert.Equal(t, language.English, c.Language())
	assert.Equal(t, language.SimplifiedChinese, zh.Language())
	assert.Equal(t, "YouTube", zh.DisplayName(YouTube))
}

func TestDetect(t *testing.T) {
	t.Parallel()

	info, err := Detect("  https://WWW.Bilibili.com/video/BV1xx411c7xx/ ")
	require.NoError(t, err)
	assert.Equal(t, Info{
		Tag:         Bilibili,
		DisplayName: "Bilibili",
		Input:       "https://WWW.Bilibili.com/video/BV1xx411c7xx/",
		Host:        "www.bilibili.com",
		Supported:   true,
	}, info)

	info, err = Detect("/home/user/a.mp4")
	require.NoError(t, err)
	assert.Equal(t, Local, info.Tag)
	assert.Empty(t, info.Host)
	assert.False(t, info.Supported)

	errCases := []struct {
		in   string
		code perr.ErrorCode
		msg  string
	}{
		{"", perr.ErrorCodeInvalidVideoURL, "video link is required"},
		{"   ", perr.ErrorCodeInvalidVideoURL, "video link is required"},
		{"https://v.douyin.com/abc", perr.ErrorCodeUnsupportedPlatform, "video platform not supported or link invalid"},
		{"https://example.com/video/1", perr.ErrorCodeUnsupportedPlatform, "video platform not supported or link invalid"},
		{"hello world", perr.ErrorCodeInvalidVideoURL, "enter a valid video link"},
	}
	for _, tc := range errCases {
		_, err := Detect(tc.in)
		require.Error(t, err, tc.in)
		e, ok := perr.As(err)
		require.True(t, ok)
		assert.Equal(t, tc.code, e.Code(), tc.in)
		assert.Equal(t, tc.msg, e.Message(), tc.in)
		assert.Equal(t, "platform.detect", e.Op())
	}

	_, err = Default().WithLanguage(language.SimplifiedChinese).Detect("")
	e, _ := perr.As(err)
	require.NotNil(t, e)
	assert.Equal(t, "视频链接不能为空", e.Message())
}

func TestExtractVideoID(t *testing.T) {
	t.Parallel()
	ok := []struct {
		in   string
		want VideoRef
	}{
		{"https://www.bilibili.com/video/BV1xx411c7xx/", VideoRef{Bilibili, "BV1xx411c7xx"}},
		{"https://b23.tv/av123456", VideoRef{Bilibili, "av123456"}},
		{"https://www.bilibili.com/video/av170001?p=2", VideoRef{Bilibili, "av170001"}},
		{"https://www.bilibili.com/video/ep12345", VideoRef{Bilibili, "ep12345"}},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10", VideoRef{YouTube, "dQw4w9WgXcQ"}},
		{"https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ", VideoRef{YouTube, "dQw4w9WgXcQ"}},
		{"https://youtu.be/dQw4w9WgXcQ", VideoRef{YouTube, "dQw4w9WgXcQ"}},
		{"https://www.youtube.com/shorts/abcdefghijk", VideoRef{YouTube, "abcdefghijk"}},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", VideoRef{YouTube, "dQw4w9WgXcQ"}},
	}
	for _, tc := range ok {
		got, err := ExtractVideoID(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	bad := []struct {
		in   string
		code perr.ErrorCode
	}{
		{"", perr.ErrorCodeInvalidVideoURL},
		{"https://b23.tv/xYz12Ab", perr.ErrorCodeVideoIDExtraction},
		{"https://www.youtube.com/watch?v=short", perr.ErrorCodeVideoIDExtraction},
		{"/home/user/a.mp4", perr.ErrorCodeUnsupportedPlatform},
		{"https://example.com/watch?v=dQw4w9WgXcQ", perr.ErrorCodeUnsupportedPlatform},
	}
	for _, tc := range bad {
		_, err := ExtractVideoID(tc.in)
		assert.True(t, perr.IsCode(err, tc.code), "%q: got %v", tc.in, err)
	}

	_, err := ExtractVideoID("https://b23.tv/xYz12Ab")
	e, _ := perr.As(err)
	require.NotNil(t, e)
	assert.Equal(t, "cannot extract a video id from this Bilibili link", e.Message())
}

func TestSelectable(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []Option{
		{Value: Bilibili, Label: "Bilibili"},
		{Value: YouTube, Label: "YouTube"},
		{Value: Local, Label: "Local video"},
	}, Selectable())

	zh := Default().WithLanguage(language.SimplifiedChinese).Selectable()
	require.Len(t, zh, 3)
	assert.Equal(t, "哔哩哔哩", zh[0].Label)
}

func TestSelectable_NoneSelectableIsEmptyNotNil(t *testing.T) {
	t.Parallel()
	pack, err := rulepack.Parse([]byte(`{"version":1,"platforms":[
		{"tag":"vimeo","priority":1,"supported":true,"patterns":["^https://vimeo\\.com/"]}
	]}`))
	require.NoError(t, err)
	got := New(pack).Selectable()
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestKnown(t *testing.T) {
	t.Parallel()
	c := Default()
	assert.True(t, c.Known(Bilibili))
	assert.True(t, c.Known(YouTube))
	assert.True(t, c.Known(Local))
	assert.False(t, c.Known(Unknown))
	assert.False(t, c.Known(Tag("vimeo")))
}

func TestRulesAndBlockedKeywords(t *testing.T) {
	t.Parallel()
	c := Default()
	rules := c.Rules()
	require.Len(t, rules, 3)
	assert.Equal(t, []Tag{Bilibili, YouTube, Local}, []Tag{rules[0].Tag, rules[1].Tag, rules[2].Tag})
	assert.Greater(t, rules[0].Priority, rules[1].Priority)
	assert.Greater(t, rules[1].Priority, rules[2].Priority)
	assert.NotEmpty(t, rules[0].Patterns)
	assert.False(t, rules[2].Supported)

	kw := c.BlockedKeywords()
	assert.Contains(t, kw, "douyin.com")
	kw[0] = "mutated"
	assert.NotEqual(t, "mutated", c.BlockedKeywords()[0])
}

func TestDefault_Singleton(t *testing.T) {
	t.Parallel()
	assert.Same(t, Default(), Default())
}

func TestClassify_Concurrent(t *testing.T) {
	t.Parallel()
	c := Default()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if c.Classify("https://m.youtube.com/watch?v=dQw4w9WgXcQ") != YouTube {
					t.Error("unexpected tag")
					return
				}
			}
		}()
	}
	wg.Wait()
}
