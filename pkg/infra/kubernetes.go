package infra

import (
	"fmt"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
)

const defaultKubernetesNamespace = "default"

type KubernetesConfig struct {
	Kubeconfig string
	Namespace  string
}

func kubernetesClientConfig(cfg KubernetesConfig) clientcmd.ClientConfig {
	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	if cfg.Kubeconfig != "" {
		loadingRules.ExplicitPath = cfg.Kubeconfig
	}
	overrides := &clientcmd.ConfigOverrides{}
	overrides.Context.Namespace = cfg.Namespace
	return clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, overrides)
}

// ResolveKubernetesNamespace prefers the configured namespace, then the kubeconfig context or service account one.
func ResolveKubernetesNamespace(cfg KubernetesConfig) string {
	if cfg.Namespace != "" {
		return cfg.Namespace
	}
	namespace, _, err := kubernetesClientConfig(cfg).Namespace()
	if err != nil || namespace == "" {
		return defaultKubernetesNamespace
	}
	return namespace
}

// NewKubernetesConnection falls back to the in-cluster service account when no kubeconfig is found
// and returns a client only once the API server reports its version.
func NewKubernetesConnection(cfg KubernetesConfig) (*kubernetes.Clientset, string, error) {
	restConfig, err := kubernetesClientConfig(cfg).ClientConfig()
	if err != nil {
		return nil, "", fmt.Errorf("infra.NewKubernetesConnection: %w", err)
	}
	restConfig.Timeout = pingTimeout
	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, "", fmt.Errorf("infra.NewKubernetesConnection: %w", err)
	}
	if _, err := clientset.Discovery().ServerVersion(); err != nil {
		return nil, "", fmt.Errorf("infra.NewKubernetesConnection ping %s: %w", restConfig.Host, err)
	}
	return clientset, ResolveKubernetesNamespace(cfg), nil
}
