package serviceInfo

import "fmt"

type ServiceInfo string

var (
	SERVICE_NAME        ServiceInfo = "GA4GH G2P Service"
	SERVICE_WELCOME     ServiceInfo = "Welcome to the GA4GH Genotype-Phenotype association API using Golang!"
	SERVICE_DESCRIPTION ServiceInfo = "Genotype-phenotype association service over the Monarch/CGD knowledge graph."
	SERVICE_CONTACT     ServiceInfo = "mailto:g2p-support@ga4gh.org" //TODO: refactor

	SERVICE_ARTIFACT    ServiceInfo = "g2p"
	SERVICE_VERSION     ServiceInfo = "0.0.1"
	SERVICE_TYPE_NO_VER ServiceInfo = ServiceInfo(fmt.Sprintf("org.ga4gh:%s", SERVICE_ARTIFACT))
	SERVICE_ID          ServiceInfo = SERVICE_TYPE_NO_VER
	SERVICE_TYPE        ServiceInfo = ServiceInfo(fmt.Sprintf("%s:%s", SERVICE_TYPE_NO_VER, SERVICE_VERSION))
)
