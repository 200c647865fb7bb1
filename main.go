//go:build !(js && wasm)

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/voxelsplace/terravox/utils"
)

func usage() {
	fmt.Println("Usage: terravox <command> [args]")
	fmt.Println("Commands:")
	fmt.Println("  genworld <seed|random> <sx> <sy> <sz> <out.tvox>  (generate an sx*sy*sz-chunk world and save a snapshot)")
	fmt.Println("  world2glb <in.tvox> <out.glb>                     (mesh a snapshot into a binary glTF with vertex colors)")
	fmt.Println("  world2map <in.tvox> <out.txt>                     (dump a snapshot as x,y,z,solid lines)")
	fmt.Println("  worldstats <in.tvox>                              (print seed, chunk, voxel and mesh figures)")
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return n, nil
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "genworld":
		if len(os.Args) != 7 {
			usage()
			os.Exit(1)
		}
		var sx, sy, sz int
		if sx, err = parseInt(os.Args[3]); err == nil {
			if sy, err = parseInt(os.Args[4]); err == nil {
				sz, err = parseInt(os.Args[5])
			}
		}
		if err == nil {
			err = utils.RunGenerateWorld(os.Args[2], sx, sy, sz, os.Args[6])
		}
	case "world2glb":
		if len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		err = utils.RunWorld2GLB(os.Args[2], os.Args[3])
	case "world2map":
		if len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		err = utils.RunWorld2Map(os.Args[2], os.Args[3])
	case "worldstats":
		if len(os.Args) != 3 {
			usage()
			os.Exit(1)
		}
		err = utils.RunWorldStats(os.Args[2])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
