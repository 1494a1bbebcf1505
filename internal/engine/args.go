// SPDX-License-Identifier: MPL-2.0

package engine

import "strconv"

// Table templates passed straight to the engine; list operations reproduce
// the engine's own tabular text unmodified.
const (
	imagesTableFormat     = "table {{.Repository}}\t{{.Tag}}\t{{.ID}}\t{{.Size}}\t{{.CreatedSince}}"
	containersTableFormat = "table {{.ID}}\t{{.Names}}\t{{.Image}}\t{{.Status}}\t{{.Ports}}"
)

// VersionArgs constructs arguments for the lightweight availability probe.
func VersionArgs() []string {
	return []string{"--version"}
}

// ImagesArgs constructs arguments for listing images.
func ImagesArgs() []string {
	return []string{"images", "--format", imagesTableFormat}
}

// PullArgs constructs arguments for pulling an image.
func PullArgs(image string) []string {
	return []string{"pull", image}
}

// BuildArgs constructs arguments for building an image from a build context.
//
// Generated command: <binary> build -t <tag> <context>
func BuildArgs(tag, contextDir string) []string {
	return []string{"build", "-t", tag, contextDir}
}

// RemoveImageArgs constructs arguments for removing an image.
func RemoveImageArgs(image string) []string {
	return []string{"rmi", image}
}

// ContainersArgs constructs arguments for listing containers. With all set,
// stopped containers are included.
func ContainersArgs(all bool) []string {
	args := []string{"ps"}
	if all {
		args = append(args, "-a")
	}
	return append(args, "--format", containersTableFormat)
}

// RunContainerArgs constructs arguments for running a detached container.
// Name and port are optional; when empty they are omitted entirely, never
// inserted as empty tokens.
//
// Generated command: <binary> run -d [--name <name>] [-p <port>] <image>
func RunContainerArgs(image, name, port string) []string {
	args := []string{"run", "-d"}
	if name != "" {
		args = append(args, "--name", name)
	}
	if port != "" {
		args = append(args, "-p", port)
	}
	return append(args, image)
}

// StartArgs constructs arguments for starting a stopped container.
func StartArgs(container string) []string {
	return []string{"start", container}
}

// StopArgs constructs arguments for stopping a container.
func StopArgs(container string) []string {
	return []string{"stop", container}
}

// RestartArgs constructs arguments for restarting a container.
func RestartArgs(container string) []string {
	return []string{"restart", container}
}

// RemoveContainerArgs constructs arguments for removing a container.
// Removal is always forced: a running container is stopped and removed in
// one step, so no separate state check happens first.
func RemoveContainerArgs(container string) []string {
	return []string{"rm", "-f", container}
}

// LogsArgs constructs arguments for tailing a container's logs.
func LogsArgs(container string, tail int) []string {
	return []string{"logs", "--tail", strconv.Itoa(tail), container}
}

// ExecShellArgs constructs arguments for an interactive shell inside a
// running container.
func ExecShellArgs(container, shell string) []string {
	return []string{"exec", "-it", container, shell}
}

// SystemInfoArgs constructs arguments for the engine's system information view.
func SystemInfoArgs() []string {
	return []string{"system", "info"}
}

// DiskUsageArgs constructs arguments for the engine's disk usage summary.
func DiskUsageArgs() []string {
	return []string{"system", "df"}
}

// PruneArgs constructs arguments for a full system prune: stopped containers,
// unused networks, dangling and unreferenced images, and build cache.
func PruneArgs() []string {
	return []string{"system", "prune", "-a", "-f"}
}
