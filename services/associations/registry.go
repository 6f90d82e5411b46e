package associations

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v2"
)

/*
	Association-set registry : which named sets exist, which
	dataset each belongs to, and where its graph files live.
	Driven by a yaml manifest; a bare data directory (no
	manifest) registers a single default 'cgd' set.
*/

type RepositoryManifest struct {
	AssociationSets []ManifestEntry `yaml:"associationSets"`
}

type ManifestEntry struct {
	Name      string `yaml:"name"`
	Dataset   string `yaml:"dataset"`
	DataPath  string `yaml:"dataPath"`
	Simulated bool   `yaml:"simulated"`
}

// InitFromManifest loads and registers every association set the
// configuration names. A graph parse failure is fatal to the whole
// registry, not silently skipped.
func (az *AssociationService) InitFromManifest() error {
	// safeguard to prevent multiple initilizations
	if az.Initialized {
		return nil
	}

	manifest, err := az.readManifest()
	if err != nil {
		return err
	}

	for _, entry := range manifest.AssociationSets {
		if entry.Simulated {
			fmt.Printf("[%s] - Registering simulated association set '%s'\n", time.Now(), entry.Name)
			az.AddSet(NewSimulatedPhenotypeAssociationSet(entry.Name, entry.Dataset))
			continue
		}

		set, setErr := NewPhenotypeAssociationSet(az.Config, entry.Name, entry.Dataset, entry.DataPath)
		if setErr != nil {
			return setErr
		}
		az.AddSet(set)
	}

	az.Initialized = true
	return nil
}

func (az *AssociationService) readManifest() (*RepositoryManifest, error) {
	manifestPath := az.Config.Api.RepositoryManifestPath
	if manifestPath == "" {
		// no manifest : a single default set over the data directory
		return &RepositoryManifest{
			AssociationSets: []ManifestEntry{
				{Name: "cgd", Dataset: "default", DataPath: az.Config.Api.DataPath},
			},
		}, nil
	}

	f, err := os.Open(manifestPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var manifest RepositoryManifest
	if err := yaml.NewDecoder(f).Decode(&manifest); err != nil {
		return nil, err
	}
	return &manifest, nil
}
