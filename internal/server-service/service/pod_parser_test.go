package service

import (
	"testing"
	"time"

	"server-dashboard/internal/server-service/model"

	"github.com/stretchr/testify/assert"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func TestFormatDuration(t *testing.T) {
	testCases := []struct {
		seconds  int64
		expected string
	}{
		{seconds: 0, expected: "0s"},
		{seconds: 45, expected: "45s"},
		{seconds: 120, expected: "2m"},
		{seconds: 125, expected: "2m 5s"},
		{seconds: 3600, expected: "1h"},
		{seconds: 3605, expected: "1h 5s"},
		{seconds: 3660, expected: "1h 1m"},
		{seconds: 3665, expected: "1h 1m 5s"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, formatDuration(tc.seconds))
		})
	}
}

func TestCleanImageName(t *testing.T) {
	testCases := []struct {
		image    string
		expected string
	}{
		{image: "pcss-prod.example.com/image:tag", expected: "image:tag"},
		{image: "nexus.example.com/image:tag", expected: "image:tag"},
		{image: "docker.example.com/team/image:tag", expected: "team/image:tag"},
		{image: "pcss-prod.example.com:5000/image:tag", expected: "5000/image:tag"},
		{image: "registry.local/image:tag", expected: "registry.local/image:tag"},
		{image: "image:tag", expected: "image:tag"},
		{image: "", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.image, func(t *testing.T) {
			assert.Equal(t, tc.expected, cleanImageName(tc.image))
		})
	}
}

func TestExtractGCOptions(t *testing.T) {
	testCases := []struct {
		name     string
		options  string
		expected string
	}{
		{name: "gc flags only", options: "-Xmx512m -XX:+UseG1GC -Xms256m -XX:MaxGCPauseMillis=200", expected: "-XX:+UseG1GC\n-XX:MaxGCPauseMillis=200"},
		{name: "gc logging", options: "-Xlog:gc*:stdout -Dfile.encoding=UTF-8", expected: "-Xlog:gc*:stdout"},
		{name: "no gc flags", options: "-Xmx512m -Xms256m", expected: ""},
		{name: "empty", options: "", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, extractGCOptions(tc.options))
		})
	}
}

func TestPodInfoFromPod(t *testing.T) {
	created := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)
	pod := corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:              "billing-7c9f-x2k",
			Labels:            map[string]string{"app": "billing"},
			Annotations:       map[string]string{"ms-branch": "release/2.4", "config-branch": "prod"},
			CreationTimestamp: metav1.NewTime(created),
		},
		Spec: corev1.PodSpec{
			Containers: []corev1.Container{
				{Name: "istio-proxy", Image: "docker.io/istio/proxyv2:1.22"},
				{
					Name:  "main",
					Image: "nexus.example.com/billing:2.4.1",
					Ports: []corev1.ContainerPort{{ContainerPort: 8080}, {ContainerPort: 8081}},
					Env: []corev1.EnvVar{
						{Name: "SPRING_PROFILES_ACTIVE", Value: "prod"},
						{Name: "JAVA_TOOL_OPTIONS", Value: "-Xmx1g -XX:+UseZGC"},
					},
					Resources: corev1.ResourceRequirements{
						Requests: corev1.ResourceList{
							corev1.ResourceCPU:    resource.MustParse("500m"),
							corev1.ResourceMemory: resource.MustParse("1Gi"),
						},
					},
				},
			},
		},
		Status: corev1.PodStatus{
			Phase: corev1.PodRunning,
			Conditions: []corev1.PodCondition{
				{Type: corev1.PodScheduled, Status: corev1.ConditionTrue, LastTransitionTime: metav1.NewTime(created.Add(time.Second))},
				{Type: corev1.PodReady, Status: corev1.ConditionTrue, LastTransitionTime: metav1.NewTime(created.Add(125 * time.Second))},
			},
			ContainerStatuses: []corev1.ContainerStatus{{RestartCount: 2}, {RestartCount: 1}},
		},
	}

	assert.Equal(t, model.PodInfo{
		Name:          "billing",
		PodName:       "billing-7c9f-x2k",
		Version:       "billing:2.4.1",
		MSBranch:      "release/2.4",
		ConfigBranch:  "prod",
		GCOptions:     "-XX:+UseZGC",
		Ports:         "8080, 8081",
		CPURequest:    "500m",
		MemoryRequest: "1Gi",
		CreationDate:  created,
		Replicas:      1,
		Restarts:      3,
		ReadyTime:     "2m 5s",
	}, podInfoFromPod(pod))
}

func TestPodInfoFromPod_Minimal(t *testing.T) {
	pod := corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{Name: "worker-1"},
		Spec:       corev1.PodSpec{Containers: []corev1.Container{{Name: "worker", Image: "worker:1"}}},
		Status: corev1.PodStatus{
			Conditions: []corev1.PodCondition{{Type: corev1.PodReady, Status: corev1.ConditionFalse}},
		},
	}

	info := podInfoFromPod(pod)
	assert.Equal(t, "worker-1", info.Name)
	assert.Equal(t, "worker:1", info.Version)
	assert.Empty(t, info.Ports)
	assert.Empty(t, info.CPURequest)
	assert.Equal(t, "-", info.ReadyTime)
	assert.Equal(t, 1, info.Replicas)
}

func TestGroupPods(t *testing.T) {
	pods := []model.PodInfo{
		{Name: "auth", PodName: "auth-1", Version: "auth:1.0", Replicas: 1},
		{Name: "billing", PodName: "billing-1", Version: "billing:2.4", Replicas: 1, Restarts: 1},
		{Name: "billing", PodName: "billing-2", Version: "billing:2.4", Replicas: 1, Restarts: 2},
		{Name: "billing", PodName: "billing-3", Version: "billing:2.5", Replicas: 1},
		{Name: "billing", PodName: "billing-4", Version: "billing:2.4", Replicas: 1},
	}

	grouped := groupPods(pods)

	assert.Equal(t, []model.PodInfo{
		{Name: "billing", PodName: "billing-1", Version: "billing:2.4", Replicas: 3, Restarts: 3},
		{Name: "auth", PodName: "auth-1", Version: "auth:1.0", Replicas: 1},
		{Name: "billing", PodName: "billing-3", Version: "billing:2.5", Replicas: 1},
	}, grouped)
	assert.Empty(t, groupPods(nil))
}
