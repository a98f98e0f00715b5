package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"industrial-catalog/internal/catalog"
	"industrial-catalog/internal/controller"
	"industrial-catalog/internal/models"
	"industrial-catalog/internal/store"
)

type listOptions struct {
	query        string
	categories   []string
	materials    []string
	applications []string
	sort         string
	page         int
	pageSize     int
}

type listOutput struct {
	Data       any `json:"data"`
	Total      int `json:"total"`
	Available  int `json:"available"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

func newListCmd(opts *globalOptions, defaultPageSize int) *cobra.Command {
	lo := &listOptions{page: 1, pageSize: defaultPageSize}

	cmd := &cobra.Command{
		Use:       "list <entity>",
		Short:     "Filter, sort and paginate a collection",
		Long:      `List one page of a collection using the same search, facets and sort as the web catalog.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{store.Products, store.News, store.Downloads, store.Certifications, store.Testimonials, store.Capabilities},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, logger, err := opts.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close(ctx)
			defer logger.Sync()

			return runList(ctx, cmd.OutOrStdout(), st, args[0], lo, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&lo.query, "q", "", "free text search")
	flags.StringSliceVar(&lo.categories, "category", nil, "category filter (repeatable)")
	flags.StringSliceVar(&lo.materials, "material", nil, "material filter (repeatable)")
	flags.StringSliceVar(&lo.applications, "application", nil, "application filter (repeatable)")
	flags.StringVar(&lo.sort, "sort", string(catalog.DefaultSort), "newest, oldest or title")
	flags.IntVar(&lo.page, "page", lo.page, "page number, 1-indexed")
	flags.IntVar(&lo.pageSize, "page-size", lo.pageSize, "items per page")
	return cmd
}

func runList(ctx context.Context, out io.Writer, st *store.Store, entity string, lo *listOptions, logger *zap.Logger) error {
	q, err := lo.toQuery()
	if err != nil {
		return err
	}

	switch entity {
	case store.Products:
		return listEntity[models.Product](ctx, out, st.Products, fixed[models.Product](models.ProductVocabulary), q, logger)
	case store.News:
		return listEntity[models.NewsArticle](ctx, out, st.News, fixed[models.NewsArticle](models.NewsVocabulary), q, logger)
	case store.Downloads:
		return listEntity[models.Download](ctx, out, st.Downloads, fixed[models.Download](models.DownloadVocabulary), q, logger)
	case store.Certifications:
		return listEntity[models.Certification](ctx, out, st.Certifications, fixed[models.Certification](catalog.Vocabulary{}), q, logger)
	case store.Testimonials:
		return listEntity[models.Testimonial](ctx, out, st.Testimonials, models.TestimonialVocabulary, q, logger)
	case store.Capabilities:
		return listEntity[models.Capability](ctx, out, st.Capabilities, fixed[models.Capability](catalog.Vocabulary{}), q, logger)
	default:
		return fmt.Errorf("unknown entity %q", entity)
	}
}

func (lo *listOptions) toQuery() (catalog.Query, error) {
	sortKey, err := catalog.ParseSortKey(lo.sort)
	if err != nil {
		return catalog.Query{}, err
	}
	facets := map[catalog.Facet][]string{}
	for facet, values := range map[catalog.Facet][]string{
		catalog.FacetCategories:   lo.categories,
		catalog.FacetMaterials:    lo.materials,
		catalog.FacetApplications: lo.applications,
	} {
		for _, v := range values {
			if strings.EqualFold(strings.TrimSpace(v), "all") {
				continue
			}
			facets[facet] = append(facets[facet], v)
		}
	}
	return catalog.Query{
		Filter:   catalog.FilterState{Query: lo.query, Facets: facets},
		Sort:     sortKey,
		Page:     lo.page,
		PageSize: lo.pageSize,
	}.Sanitize(), nil
}

func fixed[T any](vocab catalog.Vocabulary) func([]T) catalog.Vocabulary {
	return func([]T) catalog.Vocabulary { return vocab }
}

func listEntity[T catalog.Sortable](ctx context.Context, out io.Writer, loader controller.Loader[T], vocabulary func([]T) catalog.Vocabulary, q catalog.Query, logger *zap.Logger) error {
	vc := controller.New[T](loader, q.PageSize, logger)
	defer vc.Close()

	if err := vc.Load(ctx); err != nil {
		return err
	}
	if err := q.Filter.Validate(vocabulary(vc.Collection())); err != nil {
		return err
	}
	vc.Restore(q)

	view := vc.View()
	body, err := sonic.ConfigStd.MarshalIndent(listOutput{
		Data:       view.Page.Items,
		Total:      view.Page.TotalCount,
		Available:  view.Available,
		Page:       view.Page.Page,
		PageSize:   view.Page.PageSize,
		TotalPages: view.Page.TotalPages,
	}, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(body))
	return err
}
