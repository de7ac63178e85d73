package service

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"server-dashboard/internal/server-service/model"

	corev1 "k8s.io/api/core/v1"
)

const (
	mainContainerName   = "main"
	appLabel            = "app"
	msBranchAnnotation  = "ms-branch"
	cfgBranchAnnotation = "config-branch"
	javaToolOptionsEnv  = "JAVA_TOOL_OPTIONS"
	notReady            = "-"
)

var (
	registryPrefixRegex = regexp.MustCompile(`^(?:pcss-prod|nexus|docker)[^/:]*[:/]`)
	gcOptionRegex       = regexp.MustCompile(`-XX:[+-]?[^\s]*[Gg][Cc][^\s]*` +
		`|-X[^\s]*[Gg][Cc][^\s]*` +
		`|-XX:[+-]?[^\s]*[Gg]arbage[^\s]*`)
)

// cleanImageName drops a pcss-prod, nexus or docker registry host from an image reference.
func cleanImageName(image string) string {
	return strings.TrimPrefix(registryPrefixRegex.ReplaceAllString(image, "/"), "/")
}

func extractGCOptions(javaToolOptions string) string {
	return strings.Join(gcOptionRegex.FindAllString(javaToolOptions, -1), "\n")
}

func formatDuration(seconds int64) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	hours, minutes, secs := seconds/3600, seconds%3600/60, seconds%60
	parts := make([]string, 0, 3)
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if secs > 0 {
		parts = append(parts, fmt.Sprintf("%ds", secs))
	}
	return strings.Join(parts, " ")
}

func infoContainer(pod corev1.Pod) (corev1.Container, bool) {
	for _, c := range pod.Spec.Containers {
		if c.Name == mainContainerName {
			return c, true
		}
	}
	if len(pod.Spec.Containers) > 0 {
		return pod.Spec.Containers[0], true
	}
	return corev1.Container{}, false
}

func containerPorts(c corev1.Container) string {
	ports := make([]string, 0, len(c.Ports))
	for _, p := range c.Ports {
		ports = append(ports, strconv.Itoa(int(p.ContainerPort)))
	}
	return strings.Join(ports, ", ")
}

func readyTime(pod corev1.Pod) string {
	for _, cond := range pod.Status.Conditions {
		if cond.Type != corev1.PodReady || cond.Status != corev1.ConditionTrue {
			continue
		}
		if pod.CreationTimestamp.IsZero() || cond.LastTransitionTime.IsZero() {
			return notReady
		}
		seconds := int64(cond.LastTransitionTime.Sub(pod.CreationTimestamp.Time).Seconds())
		if seconds < 0 {
			return notReady
		}
		return formatDuration(seconds)
	}
	return notReady
}

func podInfoFromPod(pod corev1.Pod) model.PodInfo {
	info := model.PodInfo{
		Name:         pod.Labels[appLabel],
		PodName:      pod.Name,
		MSBranch:     pod.Annotations[msBranchAnnotation],
		ConfigBranch: pod.Annotations[cfgBranchAnnotation],
		CreationDate: pod.CreationTimestamp.UTC(),
		Replicas:     1,
		ReadyTime:    readyTime(pod),
	}
	if info.Name == "" {
		info.Name = pod.Name
	}
	if c, ok := infoContainer(pod); ok {
		info.Version = cleanImageName(c.Image)
		info.Ports = containerPorts(c)
		for _, env := range c.Env {
			if env.Name == javaToolOptionsEnv {
				info.GCOptions = extractGCOptions(env.Value)
				break
			}
		}
		if q, ok := c.Resources.Requests[corev1.ResourceCPU]; ok {
			info.CPURequest = q.String()
		}
		if q, ok := c.Resources.Requests[corev1.ResourceMemory]; ok {
			info.MemoryRequest = q.String()
		}
	}
	for _, status := range pod.Status.ContainerStatuses {
		info.Restarts += status.RestartCount
	}
	return info
}

// groupPods folds pods sharing name and version into one entry counting replicas, largest first.
func groupPods(pods []model.PodInfo) []model.PodInfo {
	index := make(map[string]int, len(pods))
	grouped := make([]model.PodInfo, 0, len(pods))
	for _, pod := range pods {
		key := pod.Name + "|" + pod.Version
		if i, ok := index[key]; ok {
			grouped[i].Replicas++
			grouped[i].Restarts += pod.Restarts
			continue
		}
		pod.Replicas = 1
		index[key] = len(grouped)
		grouped = append(grouped, pod)
	}
	sort.SliceStable(grouped, func(i, j int) bool {
		return grouped[i].Replicas > grouped[j].Replicas
	})
	return grouped
}
