package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/htmlgen-dev/htmlgen/internal/config"
	"github.com/htmlgen-dev/htmlgen/internal/showcase"
	"github.com/htmlgen-dev/htmlgen/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		bucket string
		prefix string
		region string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Render pages and upload them to S3",
		Long: `Render the showcase pages and upload them to an S3 bucket.

Credentials come from the default AWS credential chain (environment,
shared config, instance role).

Examples:
  htmlgen publish --bucket=my-site
  htmlgen publish --bucket=my-site --prefix=preview --region=eu-west-1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(bucket, prefix, region)
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Target S3 bucket (default from htmlgen.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix inside the bucket")
	cmd.Flags().StringVar(&region, "region", "", "AWS region")

	return cmd
}

func runPublish(bucket, prefix, region string) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if bucket != "" {
		cfg.Publish.Bucket = bucket
	}
	if prefix != "" {
		cfg.Publish.Prefix = prefix
	}
	if region != "" {
		cfg.Publish.Region = region
	}

	if cfg.Publish.Bucket == "" {
		return fmt.Errorf("no bucket configured: set publish.bucket in %s or pass --bucket", config.ConfigFileName)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		cancel()
	}()

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Publish.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Publish.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return fmt.Errorf("loading AWS config: %w", err)
	}

	publisher := publish.NewPublisher(s3.NewFromConfig(awsCfg), cfg.Publish.Bucket, cfg.Publish.Prefix)

	info("Publishing to s3://%s/%s", cfg.Publish.Bucket, cfg.Publish.Prefix)
	fmt.Println()

	for _, entry := range showcase.Pages() {
		key, err := publisher.PublishPage(ctx, entry.File, entry.Page())
		if err != nil {
			return err
		}
		info("s3://%s/%s", cfg.Publish.Bucket, key)
	}

	fmt.Println()
	success("Published %d pages", len(showcase.Pages()))

	return nil
}
