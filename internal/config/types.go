// Copyright 2026 Oliver Steele
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

// Config holds all configurable settings for forkstats.
type Config struct {
	// GitHub holds API endpoint settings. The GraphQL endpoint can be
	// pointed at a GitHub Enterprise instance.
	GitHub GitHubConfig `yaml:"github"`

	// Defaults holds tunable default values.
	Defaults DefaultsConfig `yaml:"defaults"`
}

// GitHubConfig holds GitHub API endpoint settings.
type GitHubConfig struct {
	// GraphQLEndpoint is the URL the single fork-network query is posted to.
	GraphQLEndpoint string `yaml:"graphql_endpoint"`
}

// DefaultsConfig holds default values that flags can override.
type DefaultsConfig struct {
	// ForkLimit is the number of forks requested when --limit is not given.
	// Must be between 1 and 100 (GitHub's page cap).
	ForkLimit int `yaml:"fork_limit"`
}

// DefaultConfig returns a Config populated with built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			GraphQLEndpoint: "https://api.github.com/graphql",
		},
		Defaults: DefaultsConfig{
			ForkLimit: 30,
		},
	}
}
