package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/leohubert/bunny-stream-go/pkg/bunny"
)

func CollectionsCmd(ctx context.Context, env *Env, services *Services, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "list":
		return collectionsList(ctx, services, args)
	case "get":
		return collectionsGet(ctx, services, args)
	case "create":
		return collectionsCreate(ctx, services, args)
	case "rename":
		return collectionsRename(ctx, services, args)
	case "delete":
		return collectionsDelete(ctx, services, args)
	}
	return fmt.Errorf("unknown collections subcommand %q", sub)
}

func collectionsList(ctx context.Context, services *Services, args []string) error {
	flags := flag.NewFlagSet("collections list", flag.ContinueOnError)
	search := flags.String("search", "", "filter by name")
	orderBy := flags.String("order", "", "sort order")
	thumbnails := flags.Bool("thumbnails", false, "include preview thumbnails")
	page := flags.Int("page", 1, "page to fetch")
	perPage := flags.Int("per-page", 100, "items per page")
	outPath := flags.String("out", "", "write the raw response to a JSON file")
	if err := flags.Parse(args); err != nil {
		return err
	}

	result, err := services.Stream.ListCollections(ctx, &bunny.ListCollectionsOptions{
		Search:            *search,
		OrderBy:           *orderBy,
		IncludeThumbnails: *thumbnails,
		Page:              *page,
		ItemsPerPage:      *perPage,
	})
	if err != nil {
		return err
	}
	if *outPath != "" {
		return deliver(services.Printer, *outPath, result)
	}

	totalItems, _ := asObject(result)["totalItems"].(float64)
	services.Printer.Heading("%d collection(s)", int(totalItems))
	for _, collection := range items(result) {
		services.Printer.CollectionLine(collection)
	}
	return nil
}

func collectionsGet(ctx context.Context, services *Services, args []string) error {
	collectionID, args, err := takeArg(args, "collection id")
	if err != nil {
		return err
	}
	flags := flag.NewFlagSet("collections get", flag.ContinueOnError)
	outPath := flags.String("out", "", "write the raw response to a JSON file")
	if err := flags.Parse(args); err != nil {
		return err
	}

	result, err := services.Stream.GetCollection(ctx, collectionID)
	if err != nil {
		return err
	}
	return deliver(services.Printer, *outPath, result)
}

func collectionsCreate(ctx context.Context, services *Services, args []string) error {
	name, _, err := takeArg(args, "collection name")
	if err != nil {
		return err
	}

	result, err := services.Stream.CreateCollection(ctx, name)
	if err != nil {
		return err
	}
	services.Printer.Object(result)
	return nil
}

func collectionsRename(ctx context.Context, services *Services, args []string) error {
	collectionID, args, err := takeArg(args, "collection id")
	if err != nil {
		return err
	}
	name, _, err := takeArg(args, "new name")
	if err != nil {
		return err
	}

	if _, err := services.Stream.UpdateCollection(ctx, collectionID, name); err != nil {
		return err
	}
	services.Printer.Success("renamed %s to %q", collectionID, name)
	return nil
}

func collectionsDelete(ctx context.Context, services *Services, args []string) error {
	collectionID, _, err := takeArg(args, "collection id")
	if err != nil {
		return err
	}

	if _, err := services.Stream.DeleteCollection(ctx, collectionID); err != nil {
		return err
	}
	services.Printer.Success("deleted %s", collectionID)
	return nil
}
