// cmd/tools/registry-updater/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"tribunal-workers/internal/workers"
	"tribunal-workers/pkg/registry"
)

func main() {
	syncCmd := flag.NewFlagSet("sync", flag.ExitOnError)
	updateCmd := flag.NewFlagSet("update", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	syncPath := syncCmd.String("path", "configs/activity-registry.json", "Path to registry file")

	updatePath := updateCmd.String("path", "configs/activity-registry.json", "Path to registry file")
	idUpdate := updateCmd.String("id", "", "Activity ID to update")
	field := updateCmd.String("field", "", "Field to update (status, version, etc.)")
	value := updateCmd.String("value", "", "New value for the field")

	validatePath := validateCmd.String("path", "configs/activity-registry.json", "Path to registry file")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "sync":
		_ = syncCmd.Parse(os.Args[2:])
		err = syncRegistry(*syncPath)
	case "update":
		_ = updateCmd.Parse(os.Args[2:])
		if *idUpdate == "" || *field == "" || *value == "" {
			fmt.Println("Error: id, field, and value are required for update.")
			updateCmd.Usage()
			os.Exit(1)
		}
		err = updateActivity(*updatePath, *idUpdate, *field, *value)
	case "validate":
		_ = validateCmd.Parse(os.Args[2:])
		err = validateRegistry(*validatePath)
	default:
		help()
		return
	}

	if err != nil {
		fmt.Printf("%s failed: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

// syncRegistry regenerates every worker entry from its schemas and keeps
// activities this module does not implement.
func syncRegistry(path string) error {
	reg, err := registry.LoadRegistry(path)
	if os.IsNotExist(err) {
		reg = registry.New(workers.RegistryVersion)
	} else if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	activities, err := workers.Activities()
	if err != nil {
		return err
	}
	for _, a := range activities {
		if existing, ok := reg.Find(a.TaskType); ok && existing.ImplementationStatus == registry.StatusVerified {
			a.ImplementationStatus = registry.StatusVerified
		}
		reg.Upsert(a)
	}

	if err := reg.Validate(); err != nil {
		return err
	}
	if err := reg.Save(path); err != nil {
		return err
	}
	fmt.Printf("Synced %d activities into %s\n", len(activities), path)
	return nil
}

func updateActivity(path, id, field, value string) error {
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	var target *registry.Activity
	for i := range reg.Activities {
		if reg.Activities[i].ID == id {
			target = &reg.Activities[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("activity with ID %s not found", id)
	}

	switch field {
	case "status":
		target.ImplementationStatus = value
	case "version":
		target.Version = value
	case "displayName":
		target.DisplayName = value
	case "description":
		target.Description = value
	case "timeout":
		target.Timeout = value
	case "retries":
		retries, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid retries value: %w", err)
		}
		target.Retries = retries
	default:
		return fmt.Errorf("unknown field: %s", field)
	}

	reg.Upsert(*target)
	if err := reg.Validate(); err != nil {
		return err
	}
	if err := reg.Save(path); err != nil {
		return err
	}
	fmt.Printf("Updated activity %s, field %s to %s\n", id, field, value)
	return nil
}

func validateRegistry(path string) error {
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}
	if err := reg.Validate(); err != nil {
		return err
	}
	if err := workers.CheckRegistry(reg); err != nil {
		return err
	}
	fmt.Printf("Registry validation passed. Found %d activities.\n", len(reg.Activities))
	return nil
}

func help() {
	fmt.Println(`
Usage: registry-updater <command> [flags]

Commands:
  sync      Regenerate worker activities from their input and output schemas
  update    Update an existing activity's field
  validate  Validate the registry file against the implemented workers
  help      Show this help message

Examples:
  registry-updater sync -path configs/activity-registry.json
  registry-updater update -id preview-decision-notice -field status -value verified
  registry-updater validate -path configs/activity-registry.json

Use 'registry-updater <command> -h' for more information about a command.
`)
}
