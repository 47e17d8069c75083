// Package s3 serves reflection files from Amazon S3.
//
// # Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "beamtime-2024", "run17/")
//
//	ds, err := crystio.ReadStills(ctx, names, cell, sg, crystio.WithBlobStore(store))
//
// Whole files are fetched with the transfer manager's concurrent ranged
// downloader; Open returns a blob for ad-hoc ranged reads.
package s3
