package cli

import (
	"context"
	"fmt"
	"os"
)

// Blogs lists the latest editorial posts.
func (a *App) Blogs(ctx context.Context) error {
	posts, _, err := a.client.ListBlogPosts(ctx, nil)
	if err != nil {
		a.log.Error(ctx, "list blog posts failed", "error", err)
		return err
	}

	if len(posts) == 0 {
		printlnFn("No posts.")
		return nil
	}
	for _, post := range posts {
		printlnFn(fmt.Sprintf("[%s] %s — %s (%s)",
			post.ID, post.Title, post.Author, post.PublishedAt.Format("2006-01-02")))
	}
	return nil
}

// ReadBlog prompts for a post id and prints the full article.
func (a *App) ReadBlog(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Post id", os.Stdout)
	if err != nil {
		return err
	}

	post, err := a.client.GetBlogPost(ctx, id)
	if err != nil {
		a.log.Error(ctx, "get blog post failed", "post", id, "error", err)
		return err
	}

	printlnFn(post.Title)
	printlnFn("  by", post.Author, "on", post.PublishedAt.Format("2006-01-02"))
	printlnFn(post.Body)
	return nil
}

// Categories lists the style categories available for filtering.
func (a *App) Categories(ctx context.Context) error {
	categories, err := a.client.ListCategories(ctx)
	if err != nil {
		a.log.Error(ctx, "list categories failed", "error", err)
		return err
	}

	for _, c := range categories {
		printlnFn(fmt.Sprintf("%s (%s)", c.Name, c.Slug))
	}
	return nil
}
