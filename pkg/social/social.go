package social

import (
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/soupkit/pkg/library"
	"github.com/dmitrymomot/soupkit/pkg/phrase"
	"github.com/dmitrymomot/soupkit/pkg/randomname"
	"github.com/dmitrymomot/soupkit/pkg/slug"
	"github.com/dmitrymomot/soupkit/pkg/text"
)

const (
	// MaxTweetLength is the rune limit of Tweet.Text.
	MaxTweetLength = 280
	// MaxHashtags is the most hashtags attached to a tweet.
	MaxHashtags = 3

	maxLikes = 10000
)

// Tweet is a fake short post.
type Tweet struct {
	Handle   string   `json:"handle" yaml:"handle"`
	Text     string   `json:"text" yaml:"text"`
	Hashtags []string `json:"hashtags" yaml:"hashtags"`
	Likes    int      `json:"likes" yaml:"likes"`
	Retweets int      `json:"retweets" yaml:"retweets"`
}

// Generator builds posts.
type Generator struct {
	text   *text.Generator
	phrase *phrase.Generator
	names  *randomname.Generator
}

// New creates a post Generator sampling through tg.
func New(tg *text.Generator) *Generator {
	return &Generator{
		text:   tg,
		phrase: phrase.New(tg),
		names:  randomname.New(tg),
	}
}

// Handle returns "@" followed by a random adjective_noun name.
func (g *Generator) Handle() (string, error) {
	name, err := g.names.Generate(&randomname.Options{Separator: "_"})
	if err != nil {
		return "", err
	}
	return "@" + name, nil
}

// Tweet returns a random phrase with up to MaxHashtags distinct hashtags.
// Hashtags that would push the text past MaxTweetLength are dropped.
func (g *Generator) Tweet() (Tweet, error) {
	handle, err := g.Handle()
	if err != nil {
		return Tweet{}, err
	}
	body, err := g.phrase.Random()
	if err != nil {
		return Tweet{}, err
	}
	body = truncate(body, MaxTweetLength)

	tags, err := g.hashtags(g.text.Intn(MaxHashtags + 1))
	if err != nil {
		return Tweet{}, err
	}

	var b strings.Builder
	b.WriteString(body)
	kept := make([]string, 0, len(tags))
	for _, tag := range tags {
		if utf8.RuneCountInString(b.String())+1+utf8.RuneCountInString(tag) > MaxTweetLength {
			break
		}
		b.WriteString(" ")
		b.WriteString(tag)
		kept = append(kept, tag)
	}

	likes := g.text.Intn(maxLikes)
	return Tweet{
		Handle:   handle,
		Text:     b.String(),
		Hashtags: kept,
		Likes:    likes,
		Retweets: g.text.Intn(likes/4 + 1),
	}, nil
}

// hashtags returns up to n distinct "#tag" strings.
func (g *Generator) hashtags(n int) ([]string, error) {
	if n == 0 {
		return []string{}, nil
	}
	words, err := g.text.Library().Load(library.Hashtags)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	// Bounded so a short list cannot loop forever.
	for range 4 * n {
		if len(out) == n {
			break
		}
		tag := slug.Make(words[g.text.Intn(len(words))], slug.Separator(""))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, "#"+tag)
	}
	return out, nil
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
