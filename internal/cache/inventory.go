package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	PostKeyPrefix      = "post:%d"
	PostListKey        = "posts:list"
	LikeCountKeyPrefix = "post:%d:likes"
	UserKeyPrefix      = "user:%s"
)

const (
	PostTTL      = 30 * time.Minute
	PostListTTL  = 1 * time.Minute
	LikeCountTTL = 5 * time.Minute
	UserTTL      = 5 * time.Minute
)

func PostKey(postID int) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func LikeCountKey(postID int) string {
	return fmt.Sprintf(LikeCountKeyPrefix, postID)
}

func UserKey(userID string) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidatePost(ctx context.Context, postID int) {
	Invalidate(ctx, PostKey(postID))
	Invalidate(ctx, PostListKey)
}

func InvalidateLikeCount(ctx context.Context, postID int) {
	Invalidate(ctx, LikeCountKey(postID))
}

func InvalidateUser(ctx context.Context, userID string) {
	Invalidate(ctx, UserKey(userID))
}
