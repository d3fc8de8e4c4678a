package cmd

import (
	"github.com/olegyurchik/kubenv/config"
)

const testStoreDir = "kubenv/store"
const testKubeDir = "kube"
const testKubeconfigPath = "kube/config"

// setTestConfig points the global config at in-memory locations, so command
// funcs under test resolve their Storemanager against the MemMapFs fixtures
func setTestConfig() {
	config.SetGlobalConfig(&config.Config{KubenvDir: testStoreDir, KubeDir: testKubeDir})
}
