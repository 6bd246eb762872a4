package prompt

import (
	"errors"
	"fmt"
	"portrait/internal/entity"
	"strings"
)

var (
	ErrUnknownArtist = errors.New("unknown artist")
	ErrUnknownStyle  = errors.New("unknown style")
)

// 构图与保真约束，每个单元的提示词都以此开头
var directives = []string{
	"Create an artistic dog portrait based on the provided photo.",
	"Preserve the exact dog breed and unique facial markings.",
	"Vertical composition, full dog entirely visible, head-to-toe inside frame, generous top/bottom margins, centered on clean background, no cropping.",
	"Ensure no part of the dog is cropped or cut off.",
	"Keep 10-15% padding around the dog on all sides.",
	"Maintain clean background to avoid edge clutter.",
	"Avoid adding text or watermarks.",
}

// Library 返回风格库，供前端展示
func Library() []Artist {
	out := make([]Artist, len(library))
	copy(out, library)
	return out
}

// FindArtist looks up an artist by key.
func FindArtist(key string) (*Artist, bool) {
	for i := range library {
		if library[i].Key == key {
			return &library[i], true
		}
	}
	return nil, false
}

// FindStyle looks up a style of the given artist.
func FindStyle(artistKey, styleKey string) (*Artist, *Style, bool) {
	artist, ok := FindArtist(artistKey)
	if !ok {
		return nil, nil, false
	}
	for i := range artist.Styles {
		if artist.Styles[i].Key == styleKey {
			return artist, &artist.Styles[i], true
		}
	}
	return artist, nil, false
}

// Build 根据风格选择确定性地生成提示词。
// 指定风格键时使用风格库描述，否则使用艺术家名加自定义作品参考。
func Build(selection entity.StyleSelection) (string, error) {
	if selection.StyleKey != "" {
		_, style, ok := FindStyle(selection.ArtistKey, selection.StyleKey)
		if !ok {
			if _, known := FindArtist(selection.ArtistKey); !known {
				return "", fmt.Errorf("%w: %s", ErrUnknownArtist, selection.ArtistKey)
			}
			return "", fmt.Errorf("%w: %s/%s", ErrUnknownStyle, selection.ArtistKey, selection.StyleKey)
		}
		return compose(style.Prompt), nil
	}

	artist, ok := FindArtist(selection.ArtistKey)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownArtist, selection.ArtistKey)
	}
	reference := strings.TrimSpace(selection.CustomReference)
	if reference == "" {
		return "", fmt.Errorf("%w: %s has no style or reference", ErrUnknownStyle, selection.ArtistKey)
	}
	return compose(fmt.Sprintf("in the style of %s, inspired by the painting %q", artist.Name, reference)), nil
}

func compose(stylePrompt string) string {
	parts := make([]string, 0, len(directives)+1)
	parts = append(parts, directives...)
	parts = append(parts, stylePrompt)
	return strings.Join(parts, " ")
}
