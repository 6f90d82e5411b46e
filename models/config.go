package models

type Config struct {
	Debug          bool   `yaml:"debug" envconfig:"G2P_DEBUG"`
	SemVer         string `yaml:"semVer" envconfig:"G2P_SEMVER"`
	ServiceContact string `yaml:"serviceContact" envconfig:"G2P_SERVICE_CONTACT"`
	Api            struct {
		Port                   string `yaml:"port" envconfig:"G2P_API_INTERNAL_PORT"`
		Url                    string `yaml:"url" envconfig:"G2P_API_URL"`
		DataPath               string `yaml:"dataPath" envconfig:"G2P_API_DATA_PATH"`
		RepositoryManifestPath string `yaml:"repositoryManifestPath" envconfig:"G2P_API_REPOSITORY_MANIFEST_PATH"`
		RemoteGraphUrl         string `yaml:"remoteGraphUrl" envconfig:"G2P_API_REMOTE_GRAPH_URL"`
		DefaultSetName         string `yaml:"defaultSetName" envconfig:"G2P_API_DEFAULT_SET_NAME" default:"cgd"`
		OverviewRefreshMinutes int    `yaml:"overviewRefreshMinutes" envconfig:"G2P_API_OVERVIEW_REFRESH_MINUTES"`
	} `yaml:"api"`
}
