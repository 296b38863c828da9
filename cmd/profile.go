package cmd

import (
	"fmt"

	"github.com/fovesdk/fove-go"
	"github.com/fovesdk/fove-go/capi"
	"github.com/fovesdk/fove-go/internal/output"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage calibration profiles",
	Long: `Profiles hold per-user data, most importantly eye tracking calibrations.
Exactly one profile is current at a time; switching profiles loads the
calibration stored in the target profile.`,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles and mark the current one",
	RunE:  withProfileHeadset(runProfileList),
}

var profileCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new empty profile",
	Args:  cobra.ExactArgs(1),
	RunE:  withProfileHeadset(runProfileCreate),
}

var profileRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a profile",
	Args:  cobra.ExactArgs(2),
	RunE:  withProfileHeadset(runProfileRename),
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a profile and its data",
	Args:  cobra.ExactArgs(1),
	RunE:  withProfileHeadset(runProfileDelete),
}

var profileUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Make a profile current",
	Args:  cobra.ExactArgs(1),
	RunE:  withProfileHeadset(runProfileUse),
}

var profileCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Print the current profile name",
	RunE:  withProfileHeadset(runProfileCurrent),
}

var profilePathCmd = &cobra.Command{
	Use:   "path <name>",
	Short: "Print where a profile stores its data",
	Args:  cobra.ExactArgs(1),
	RunE:  withProfileHeadset(runProfilePath),
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileCreateCmd)
	profileCmd.AddCommand(profileRenameCmd)
	profileCmd.AddCommand(profileDeleteCmd)
	profileCmd.AddCommand(profileUseCmd)
	profileCmd.AddCommand(profileCurrentCmd)
	profileCmd.AddCommand(profilePathCmd)
	profileListCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

// withProfileHeadset opens a headset without capabilities (profile calls only
// need the runtime service) and hands it to fn.
func withProfileHeadset(fn func(h *fove.Headset, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		h, err := openHeadset(cmd, capi.CapNone)
		if err != nil {
			return err
		}
		defer h.Close()
		return fn(h, cmd, args)
	}
}

func runProfileList(h *fove.Headset, cmd *cobra.Command, args []string) error {
	profiles := h.ListProfiles()
	if err := profiles.Err(); err != nil {
		return err
	}
	res := output.ProfilesResult{Profiles: profiles.Value()}
	if res.Profiles == nil {
		res.Profiles = []string{}
	}
	if current := h.CurrentProfile(); current.Succeeded() {
		res.Current = current.Value()
	}
	return output.Print(res)
}

func runProfileCreate(h *fove.Headset, cmd *cobra.Command, args []string) error {
	return h.CreateProfile(args[0]).Err()
}

func runProfileRename(h *fove.Headset, cmd *cobra.Command, args []string) error {
	return h.RenameProfile(args[0], args[1]).Err()
}

func runProfileDelete(h *fove.Headset, cmd *cobra.Command, args []string) error {
	return h.DeleteProfile(args[0]).Err()
}

func runProfileUse(h *fove.Headset, cmd *cobra.Command, args []string) error {
	return h.SetCurrentProfile(args[0]).Err()
}

func runProfileCurrent(h *fove.Headset, cmd *cobra.Command, args []string) error {
	current := h.CurrentProfile()
	if err := current.Err(); err != nil {
		return err
	}
	fmt.Println(current.Value())
	return nil
}

func runProfilePath(h *fove.Headset, cmd *cobra.Command, args []string) error {
	path := h.ProfileDataPath(args[0])
	if err := path.Err(); err != nil {
		return err
	}
	fmt.Println(path.Value())
	return nil
}
