package feed

import "sort"

// Strategy orders two enriched posts. The comparator chains mirror the feed
// tabs the UI offers: following is plain reverse-chronological, featured
// ranks by likes, popular by conversation volume.
type Strategy func(a, b PostView) bool

const DefaultStrategy = "following"

var strategies = map[string]Strategy{
	"following": byNewest,
	"featured":  byLikes,
	"popular":   byComments,
}

// StrategyByName resolves a strategy, falling back to the default for
// unknown names.
func StrategyByName(name string) Strategy {
	if s, ok := strategies[name]; ok {
		return s
	}
	return strategies[DefaultStrategy]
}

func byNewest(a, b PostView) bool {
	return a.CreatedAt.After(b.CreatedAt)
}

func byLikes(a, b PostView) bool {
	if len(a.Likes) != len(b.Likes) {
		return len(a.Likes) > len(b.Likes)
	}
	return a.CreatedAt.After(b.CreatedAt)
}

func byComments(a, b PostView) bool {
	if a.CommentCount != b.CommentCount {
		return a.CommentCount > b.CommentCount
	}
	if len(a.Likes) != len(b.Likes) {
		return len(a.Likes) > len(b.Likes)
	}
	return a.CreatedAt.After(b.CreatedAt)
}

func sortViews(views []PostView, less Strategy) []PostView {
	sort.SliceStable(views, func(i, j int) bool {
		return less(views[i], views[j])
	})
	return views
}

// Comments read oldest first, the opposite of the feed's newest-first order.
func sortCommentsAsc(views []CommentView) {
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].CreatedAt.Before(views[j].CreatedAt)
	})
}
