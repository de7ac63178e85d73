package response

import (
	"time"

	"server-dashboard/internal/server-service/model"
)

const podTimeLayout = "2006-01-02 15:04:05"

type PodInfoResponse struct {
	Name          string `json:"name"`
	PodName       string `json:"podName"`
	Version       string `json:"version"`
	MSBranch      string `json:"msBranch"`
	ConfigBranch  string `json:"configBranch"`
	GCOptions     string `json:"gcOptions"`
	Port          string `json:"port"`
	CPURequest    string `json:"cpuRequest"`
	MemoryRequest string `json:"memoryRequest"`
	CreationDate  string `json:"creationDate"`
	Replicas      int    `json:"replicas"`
	Restarts      int32  `json:"restarts"`
	ReadyTime     string `json:"readyTime"`
}

// PodSummaryResponse leaves out runtime tuning and resource requests.
type PodSummaryResponse struct {
	Name         string `json:"name"`
	PodName      string `json:"podName"`
	Version      string `json:"version"`
	MSBranch     string `json:"msBranch"`
	ConfigBranch string `json:"configBranch"`
	Port         string `json:"port"`
	Replicas     int    `json:"replicas"`
	Restarts     int32  `json:"restarts"`
	ReadyTime    string `json:"readyTime"`
}

type NamespaceResponse struct {
	Namespace string `json:"namespace"`
}

type PodsInfoResponse struct {
	Enabled   bool              `json:"enabled"`
	Namespace string            `json:"namespace"`
	TotalPods int               `json:"totalPods"`
	Pods      []PodInfoResponse `json:"pods"`
	Timestamp time.Time         `json:"timestamp"`
}

func NewPodInfoResponse(pod model.PodInfo) PodInfoResponse {
	creationDate := ""
	if !pod.CreationDate.IsZero() {
		creationDate = pod.CreationDate.UTC().Format(podTimeLayout)
	}
	return PodInfoResponse{
		Name:          pod.Name,
		PodName:       pod.PodName,
		Version:       pod.Version,
		MSBranch:      pod.MSBranch,
		ConfigBranch:  pod.ConfigBranch,
		GCOptions:     pod.GCOptions,
		Port:          pod.Ports,
		CPURequest:    pod.CPURequest,
		MemoryRequest: pod.MemoryRequest,
		CreationDate:  creationDate,
		Replicas:      pod.Replicas,
		Restarts:      pod.Restarts,
		ReadyTime:     pod.ReadyTime,
	}
}

func NewPodInfoResponses(pods []model.PodInfo) []PodInfoResponse {
	res := make([]PodInfoResponse, 0, len(pods))
	for _, pod := range pods {
		res = append(res, NewPodInfoResponse(pod))
	}
	return res
}

func NewPodSummaryResponses(pods []model.PodInfo) []PodSummaryResponse {
	res := make([]PodSummaryResponse, 0, len(pods))
	for _, pod := range pods {
		res = append(res, PodSummaryResponse{
			Name:         pod.Name,
			PodName:      pod.PodName,
			Version:      pod.Version,
			MSBranch:     pod.MSBranch,
			ConfigBranch: pod.ConfigBranch,
			Port:         pod.Ports,
			Replicas:     pod.Replicas,
			Restarts:     pod.Restarts,
			ReadyTime:    pod.ReadyTime,
		})
	}
	return res
}
