package contracts

import "codebundle/bundler/models"

type ISelector interface {
	Select(listing []string, config *models.BundleConfig) []string
}

type IBundler interface {
	Bundle(orderedPaths []string, config *models.BundleConfig) (*models.BundleSummary, error)
}
