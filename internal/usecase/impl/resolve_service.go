package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"beacon/config"
	deliverycontext "beacon/internal/delivery/context"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/identifier"
	"beacon/internal/domain/repository"
	"beacon/internal/usecase"

	"go.uber.org/fx"
)

const defaultDirectoryTimeout = 5 * time.Second

// resolutionStrategy is one ordered exact-match rule. Within a strategy the
// first directory entry that satisfies it wins, so directory ordering decides
// ties between devices that erroneously share an attribute.
type resolutionStrategy struct {
	name  string
	match func(entry *entity.DirectoryEntry, id string) bool
}

// Key spellings observed across client versions; values are matched
// case-sensitively, only the document keys vary in casing.
var (
	inventoryAssetTagKeys = []string{"assetTag", "asset_tag", "AssetTag"}
	inventoryNameKeys     = []string{"deviceName", "device_name", "DeviceName", "computerName", "computer_name", "ComputerName"}
	hostnameKeys          = []string{"hostname", "hostName", "host_name", "Hostname", "localHostname", "local_hostname"}
	hostnameModules       = []string{"network", "system"}
)

// resolutionStrategies lists the exact-match strategies in fixed priority
// order: canonical serial number first, hostname fields last.
var resolutionStrategies = []resolutionStrategy{
	{
		name: "serialNumber",
		match: func(entry *entity.DirectoryEntry, id string) bool {
			return entry.SerialNumber == id
		},
	},
	{
		name: "deviceId",
		match: func(entry *entity.DirectoryEntry, id string) bool {
			return entry.DeviceID == id
		},
	},
	{
		name: "assetTag",
		match: func(entry *entity.DirectoryEntry, id string) bool {
			return entry.AssetTag != "" && entry.AssetTag == id
		},
	},
	{
		name: "inventoryAssetTag",
		match: func(entry *entity.DirectoryEntry, id string) bool {
			return moduleFieldEquals(entry, []string{"inventory"}, inventoryAssetTagKeys, id)
		},
	},
	{
		name: "deviceName",
		match: func(entry *entity.DirectoryEntry, id string) bool {
			if entry.Name != "" && entry.Name == id {
				return true
			}

			return moduleFieldEquals(entry, []string{"inventory"}, inventoryNameKeys, id)
		},
	},
	{
		name: "hostname",
		match: func(entry *entity.DirectoryEntry, id string) bool {
			return moduleFieldEquals(entry, hostnameModules, hostnameKeys, id)
		},
	},
}

// resolveService implements the ResolveUsecase interface.
type resolveService struct {
	directory repository.DeviceDirectory
	timeout   time.Duration
	logger    *slog.Logger
}

// ResolveServiceParams holds dependencies for the resolve service, injected by Fx.
type ResolveServiceParams struct {
	fx.In

	Directory repository.DeviceDirectory
	Config    *config.Config
	Logger    *slog.Logger
}

// NewResolveService is the constructor for resolveService.
func NewResolveService(params ResolveServiceParams) usecase.ResolveUsecase {
	timeout := defaultDirectoryTimeout
	if params.Config != nil && params.Config.Resolver != nil && params.Config.Resolver.DirectoryTimeout > 0 {
		timeout = params.Config.Resolver.DirectoryTimeout
	}

	return &resolveService{
		directory: params.Directory,
		timeout:   timeout,
		logger:    params.Logger,
	}
}

func (srv *resolveService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve classifies the identifier and walks the ordered strategies over a
// fresh directory snapshot. Every failure mode folds into Found == false:
// the resolver fails safe, never open, and never propagates an error.
func (srv *resolveService) Resolve(ctx context.Context, rawIdentifier string) *entity.Resolution {
	kind := identifier.Classify(rawIdentifier)
	miss := &entity.Resolution{
		Found:      false,
		Identifier: rawIdentifier,
		Kind:       kind,
	}

	if strings.TrimSpace(rawIdentifier) == "" {
		return miss
	}

	snapshotCtx, cancel := context.WithTimeout(ctx, srv.timeout)
	defer cancel()

	entries, err := srv.directory.Snapshot(snapshotCtx)
	if err != nil {
		srv.log(ctx).Warn("Device directory fetch failed, resolving to not found",
			slog.String("identifier", rawIdentifier),
			slog.Any("error", err),
		)

		return miss
	}

	for _, strategy := range resolutionStrategies {
		for _, entry := range entries {
			if strategy.match(entry, rawIdentifier) {
				srv.log(ctx).Debug("Identifier resolved",
					slog.String("identifier", rawIdentifier),
					slog.String("strategy", strategy.name),
					slog.String("serialNumber", entry.SerialNumber),
				)

				return &entity.Resolution{
					Found:        true,
					SerialNumber: entry.SerialNumber,
					Identifier:   rawIdentifier,
					Kind:         kind,
				}
			}
		}
	}

	return miss
}

// moduleFieldEquals reports whether any of the given keys in any of the given
// module documents holds exactly the identifier value.
func moduleFieldEquals(entry *entity.DirectoryEntry, modules, keys []string, id string) bool {
	for _, module := range modules {
		document, ok := entry.Modules[module]
		if !ok {
			continue
		}
		for _, key := range keys {
			if value, ok := document[key].(string); ok && value != "" && value == id {
				return true
			}
		}
	}

	return false
}
