/*
Cluster verification tests.

These tests check that the objects under deploy/ exist in a running
cluster: the deployment, its pods, the service, and the network policies
in the app namespace. Every check skips when the cluster is unreachable,
so the suite can run on machines without a kubeconfig; the same checks
run unconditionally against a seeded fake clientset in seeded_test.go.

Run against a live cluster with:

	go test -v ./test/integration/cluster/...
*/
package cluster

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

const (
	namespace = "app"
	appName   = "my-app"
)

// newClientset builds a client from the in-cluster service account when the
// tests run inside a pod, falling back to the local kubeconfig. Tests skip
// when neither is available.
func newClientset(t *testing.T) kubernetes.Interface {
	t.Helper()

	restConfig, err := rest.InClusterConfig()
	if err != nil {
		kubeconfig := os.Getenv("KUBECONFIG")
		if kubeconfig == "" {
			kubeconfig = clientcmd.RecommendedHomeFile
		}
		restConfig, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
		if err != nil {
			t.Skipf("no cluster configuration available: %v", err)
		}
	}

	cs, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		t.Skipf("could not build clientset: %v", err)
	}
	return cs
}

func TestDeploymentExists(t *testing.T) {
	cs := newClientset(t)

	names, err := deploymentNames(context.Background(), cs)
	if err != nil {
		t.Skipf("cannot list deployments in namespace %q: %v", namespace, err)
	}

	assert.NotEmpty(t, names, "expected deployment %q in namespace %q", appName, namespace)
}

func TestPodsRunning(t *testing.T) {
	cs := newClientset(t)

	pods, err := listPods(context.Background(), cs)
	if err != nil {
		t.Skipf("cannot list pods in namespace %q: %v", namespace, err)
	}

	require.NotEmpty(t, pods, "expected pods in namespace %q", namespace)
	for _, pod := range pods {
		if strings.Contains(pod.Name, appName) {
			assert.Equalf(t, corev1.PodRunning, pod.Status.Phase, "pod %s", pod.Name)
		}
	}
}

func TestServiceExists(t *testing.T) {
	cs := newClientset(t)

	names, err := serviceNames(context.Background(), cs)
	if err != nil {
		t.Skipf("cannot list services in namespace %q: %v", namespace, err)
	}

	assert.NotEmpty(t, names, "expected service %q in namespace %q", appName, namespace)
}

func TestNetworkPoliciesApplied(t *testing.T) {
	cs := newClientset(t)

	policies, err := networkPolicies(context.Background(), cs)
	if err != nil {
		t.Skipf("network policy check not available: %v", err)
	}

	assert.NotEmpty(t, policies, "expected a network policy in namespace %q", namespace)
}

func TestPodToPodConnectivity(t *testing.T) {
	t.Skip("requires network access to the cluster")
}

func deploymentNames(ctx context.Context, cs kubernetes.Interface) ([]string, error) {
	list, err := cs.AppsV1().Deployments(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(list.Items))
	for _, d := range list.Items {
		names = append(names, d.Name)
	}
	return names, nil
}

func listPods(ctx context.Context, cs kubernetes.Interface) ([]corev1.Pod, error) {
	list, err := cs.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

func serviceNames(ctx context.Context, cs kubernetes.Interface) ([]string, error) {
	list, err := cs.CoreV1().Services(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(list.Items))
	for _, s := range list.Items {
		names = append(names, s.Name)
	}
	return names, nil
}

func networkPolicies(ctx context.Context, cs kubernetes.Interface) ([]networkingv1.NetworkPolicy, error) {
	list, err := cs.NetworkingV1().NetworkPolicies(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}
